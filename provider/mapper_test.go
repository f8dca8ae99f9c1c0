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
	"testing"

	"github.com/stretchr/testify/assert"
)

func infoResponse(elements ...DecisionElement) *RawResponse {
	return &RawResponse{
		Header: ResponseHeader{
			ResponseType:  ResponseTypeInfo,
			TransactionID: "txn_abc",
		},
		Payload: &ResponsePayload{DecisionElements: elements},
	}
}

func TestMapResponseFlattensRuleIDsInOrder(t *testing.T) {
	raw := infoResponse(
		DecisionElement{Rules: []Rule{{RuleID: "FR01"}, {RuleID: ""}, {RuleID: "FR02"}}},
		DecisionElement{Rules: []Rule{{RuleID: "FR03"}}},
	)

	result, err := MapResponse(raw)
	assert.NoError(t, err)
	assert.True(t, result.ExecutedSuccessfully)
	assert.Equal(t, []string{"FR01", "FR02", "FR03"}, result.ThirdPartyFraudCodes)
	assert.Equal(t, "txn_abc", result.TransactionID)
}

func TestMapResponseNoRulesMeansNoCodes(t *testing.T) {
	raw := infoResponse(DecisionElement{Rules: []Rule{}})

	result, err := MapResponse(raw)
	assert.NoError(t, err)
	assert.True(t, result.ExecutedSuccessfully)
	assert.Empty(t, result.ThirdPartyFraudCodes)
	assert.NotNil(t, result.ThirdPartyFraudCodes)
}

func TestMapResponseValidationFailure(t *testing.T) {
	raw := &RawResponse{
		Header: ResponseHeader{ResponseType: ResponseTypeInfo, TransactionID: "txn_abc"},
	}

	result, err := MapResponse(raw)
	assert.NoError(t, err)
	assert.False(t, result.ExecutedSuccessfully)
	assert.Equal(t, "provider response failed validation", result.ErrorMessage)
	assert.Equal(t, "txn_abc", result.TransactionID)
}

func TestMapResponseErrorReply(t *testing.T) {
	raw := &RawResponse{
		Header: ResponseHeader{
			ResponseType:    ResponseTypeError,
			ResponseCode:    "E101",
			ResponseMessage: "",
			TransactionID:   "txn_err",
		},
	}

	result, err := MapResponse(raw)
	assert.NoError(t, err)
	assert.False(t, result.ExecutedSuccessfully)
	assert.Contains(t, result.ErrorMessage, "E101")
	assert.Contains(t, result.ErrorMessage, NotSpecified)
	assert.Equal(t, "txn_err", result.TransactionID)
}

func TestMapResponseWarnReply(t *testing.T) {
	raw := &RawResponse{
		Header: ResponseHeader{
			ResponseType:    ResponseTypeWarn,
			ResponseMessage: "degraded data sources",
		},
	}

	result, err := MapResponse(raw)
	assert.NoError(t, err)
	assert.False(t, result.ExecutedSuccessfully)
	assert.Contains(t, result.ErrorMessage, NotSpecified)
	assert.Contains(t, result.ErrorMessage, "degraded data sources")
}

func TestMapResponseUnknownTypeIsFatal(t *testing.T) {
	raw := &RawResponse{Header: ResponseHeader{ResponseType: "SOMETHING_NEW"}}

	result, err := MapResponse(raw)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnexpectedResponseType)
}

func TestValidateResponseFindings(t *testing.T) {
	assert.Equal(t, []string{"response payload is missing"},
		ValidateResponse(&RawResponse{Header: ResponseHeader{ResponseType: ResponseTypeInfo}}))

	assert.Equal(t, []string{"response payload contains no decision elements"},
		ValidateResponse(&RawResponse{Payload: &ResponsePayload{}}))

	findings := ValidateResponse(infoResponse(DecisionElement{Decision: "REFER"}))
	assert.Len(t, findings, 1)
	assert.Contains(t, findings[0], "missing its rules section")

	assert.Empty(t, ValidateResponse(infoResponse(DecisionElement{Rules: []Rule{}})))
}

func TestDecodeResponse(t *testing.T) {
	body := []byte(`{
		"header": {"response_type": "INFO", "transaction_id": "txn_1"},
		"client_response_payload": {"decision_elements": [{"rules": [{"rule_id": "FR01"}]}]}
	}`)

	raw, err := DecodeResponse(body)
	assert.NoError(t, err)
	assert.Equal(t, ResponseTypeInfo, raw.Header.ResponseType)
	assert.Equal(t, "FR01", raw.Payload.DecisionElements[0].Rules[0].RuleID)

	_, err = DecodeResponse([]byte(`not json`))
	assert.Error(t, err)
}
