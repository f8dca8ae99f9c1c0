/*
Copyright 2025 Truna Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package provider

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/truna-id/fraudcheck/model"
)

// NotSpecified substitutes for a blank code or description in a provider
// error reply so the message stays readable.
const NotSpecified = "Not specified"

// failedValidationMessage deliberately carries no provider internals; the
// findings themselves only go to the log.
const failedValidationMessage = "provider response failed validation"

// MapResponse converts a decoded provider reply into a FraudCheckResult.
//
// INFO replies are validated and their rule ids flattened, in encounter
// order, into the result's fraud codes. ERROR and WARN replies become
// failed results carrying the provider's own code and description. Any
// other declared type is a contract violation and returns
// ErrUnexpectedResponseType. The provider transaction id is copied onto the
// result on every path.
func MapResponse(raw *RawResponse) (*model.FraudCheckResult, error) {
	transactionID := raw.Header.TransactionID

	switch raw.Header.ResponseType {
	case ResponseTypeInfo:
		if findings := ValidateResponse(raw); len(findings) > 0 {
			logrus.Warnf("provider response failed validation: %v", findings)
			return model.NewFailedFraudCheckResult(failedValidationMessage, transactionID), nil
		}
		var codes []string
		for _, element := range raw.Payload.DecisionElements {
			for _, rule := range element.Rules {
				if rule.RuleID == "" {
					continue
				}
				codes = append(codes, rule.RuleID)
			}
		}
		return model.NewFraudCheckResult(codes, transactionID), nil

	case ResponseTypeError, ResponseTypeWarn:
		code := raw.Header.ResponseCode
		if code == "" {
			code = NotSpecified
		}
		description := raw.Header.ResponseMessage
		if description == "" {
			description = NotSpecified
		}
		message := fmt.Sprintf("provider reported an error, code: %s, description: %s", code, description)
		return model.NewFailedFraudCheckResult(message, transactionID), nil

	default:
		return nil, errors.Wrapf(ErrUnexpectedResponseType, "response type %q", raw.Header.ResponseType)
	}
}
