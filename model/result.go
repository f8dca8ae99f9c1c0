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
package model

// FraudCheckResult is the normalized outcome of one provider round trip.
// Built fresh by the response mapper on every invocation and never mutated
// afterwards.
type FraudCheckResult struct {
	ExecutedSuccessfully bool     `json:"executed_successfully"`
	ThirdPartyFraudCodes []string `json:"third_party_fraud_codes"`
	ErrorMessage         string   `json:"error_message,omitempty"`
	TransactionID        string   `json:"transaction_id,omitempty"`
}

// NewFraudCheckResult returns a successful result carrying the provider's
// fraud codes. Codes is never nil on success, only possibly empty.
func NewFraudCheckResult(codes []string, transactionID string) *FraudCheckResult {
	if codes == nil {
		codes = []string{}
	}
	return &FraudCheckResult{
		ExecutedSuccessfully: true,
		ThirdPartyFraudCodes: codes,
		TransactionID:        transactionID,
	}
}

// NewFailedFraudCheckResult returns a failed result carrying a descriptive
// message for the caller.
func NewFailedFraudCheckResult(message, transactionID string) *FraudCheckResult {
	return &FraudCheckResult{
		ExecutedSuccessfully: false,
		ThirdPartyFraudCodes: []string{},
		ErrorMessage:         message,
		TransactionID:        transactionID,
	}
}

// VerificationResult is the only object the verification pipeline hands back
// across its public boundary. Every exit path of the orchestrator produces
// one; no exception crosses that boundary.
type VerificationResult struct {
	Success          bool     `json:"success"`
	Contraindicators []string `json:"contraindicators"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
	Error            string   `json:"error,omitempty"`
	TransactionID    string   `json:"transaction_id,omitempty"`
}
