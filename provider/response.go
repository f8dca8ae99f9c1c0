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
	"encoding/json"

	"github.com/pkg/errors"
)

// ResponseType is the provider's declared classification of its own reply.
// The set is closed: anything else is a contract violation, not a value to
// pass through.
type ResponseType string

const (
	// ResponseTypeInfo declares a successfully completed check workflow.
	ResponseTypeInfo ResponseType = "INFO"
	// ResponseTypeError declares a provider-side business rejection.
	ResponseTypeError ResponseType = "ERROR"
	// ResponseTypeWarn declares a provider-side warning; treated like an
	// error for the purposes of the check outcome.
	ResponseTypeWarn ResponseType = "WARN"
)

// ErrUnexpectedResponseType indicates the provider declared a response type
// outside its documented contract. Callers must be able to tell "the
// provider sent something we don't understand" apart from "the provider
// reported a business error", so this surfaces as an error, never a result.
var ErrUnexpectedResponseType = errors.New("provider declared an unexpected response type")

// ResponseHeader is the envelope every provider reply carries regardless of
// outcome.
type ResponseHeader struct {
	ResponseType    ResponseType `json:"response_type"`
	ResponseCode    string       `json:"response_code"`
	ResponseMessage string       `json:"response_message"`
	TenantID        string       `json:"tenant_id"`
	RequestType     string       `json:"request_type"`
	// TransactionID is the provider's correlation id for this check. Copied
	// onto every result, success or failure, so audit trails can always be
	// tied back to the provider.
	TransactionID string `json:"transaction_id"`
}

// Rule is a single fraud rule the provider evaluated.
type Rule struct {
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name,omitempty"`
}

// DecisionElement is one scored decision in the provider's payload, with
// the rules that fired for it.
type DecisionElement struct {
	Decision string `json:"decision,omitempty"`
	Score    int    `json:"score,omitempty"`
	Rules    []Rule `json:"rules"`
}

// ResponsePayload is the body of an informational reply.
type ResponsePayload struct {
	DecisionElements []DecisionElement `json:"decision_elements"`
}

// RawResponse is the full provider reply before validation.
type RawResponse struct {
	Header  ResponseHeader   `json:"header"`
	Payload *ResponsePayload `json:"client_response_payload,omitempty"`
}

// DecodeResponse parses a provider reply body.
func DecodeResponse(body []byte) (*RawResponse, error) {
	var raw RawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse provider response")
	}
	return &raw, nil
}
