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
package fraudcheck

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/truna-id/fraudcheck/internal/httpclient"
	"github.com/truna-id/fraudcheck/internal/signer"
	"github.com/truna-id/fraudcheck/model"
	"github.com/truna-id/fraudcheck/provider"
)

var tracer = otel.Tracer("fraudcheck.verification")

// genericFailureMessage fronts any unexpected failure; the underlying
// error text is appended for diagnosis but the shape stays uniform.
const genericFailureMessage = "identity verification could not be completed"

// VerifyIdentity runs the full verification pipeline: validate the
// identity, build and sign the provider request, dispatch it with retries,
// map the reply and translate the fraud codes. Every exit path returns a
// well-formed VerificationResult; no error escapes this boundary.
func (f *Fraudcheck) VerifyIdentity(ctx context.Context, identity *model.Identity) *model.VerificationResult {
	ctx, span := tracer.Start(ctx, "VerifyIdentity")
	defer span.End()

	if identity == nil {
		return &model.VerificationResult{
			Success:          false,
			Contraindicators: []string{},
			ValidationErrors: []string{"identity is required"},
		}
	}

	if validationErrors := identity.Validate(); len(validationErrors) > 0 {
		span.SetAttributes(attribute.Bool("fraudcheck.input_valid", false))
		return &model.VerificationResult{
			Success:          false,
			Contraindicators: []string{},
			ValidationErrors: validationErrors,
		}
	}

	checkResult := f.runFraudCheck(ctx, span, identity)
	if !checkResult.ExecutedSuccessfully {
		span.SetAttributes(attribute.Bool("fraudcheck.success", false))
		return &model.VerificationResult{
			Success:          false,
			Contraindicators: []string{},
			Error:            checkResult.ErrorMessage,
			TransactionID:    checkResult.TransactionID,
		}
	}

	contraindicators, err := f.translator.Translate(checkResult.ThirdPartyFraudCodes)
	if err != nil {
		return f.unexpectedFailure(span, checkResult.TransactionID, err)
	}

	span.SetAttributes(
		attribute.Bool("fraudcheck.success", true),
		attribute.Int("fraudcheck.contraindicators", len(contraindicators)),
	)
	return &model.VerificationResult{
		Success:          true,
		Contraindicators: contraindicators,
		TransactionID:    checkResult.TransactionID,
	}
}

// runFraudCheck performs one provider round trip and normalizes whatever
// comes back, structured failure included, into a FraudCheckResult.
func (f *Fraudcheck) runFraudCheck(ctx context.Context, span trace.Span, identity *model.Identity) *model.FraudCheckResult {
	outbound, err := f.builder.Build(identity)
	if err != nil {
		return f.unexpectedCheckFailure(span, "", err)
	}

	body, err := json.Marshal(outbound)
	if err != nil {
		return f.unexpectedCheckFailure(span, "", err)
	}
	f.metrics.RequestsCreated.Inc()
	span.SetAttributes(attribute.String("fraudcheck.client_reference_id", outbound.Header.ClientReferenceID))

	headers := map[string]string{
		signer.HeaderName: f.signer.Sign(body),
	}

	reply, err := f.client.Post(ctx, f.endpointURL, body, headers)
	if err != nil {
		return f.unexpectedCheckFailure(span, "", err)
	}

	if reply.StatusCode != http.StatusOK {
		description := httpclient.DescribeStatus(reply.StatusCode)
		logrus.Warnf("fraud check for reference %s ended with terminal status: %s", outbound.Header.ClientReferenceID, description)
		return model.NewFailedFraudCheckResult(description, "")
	}

	raw, err := provider.DecodeResponse(reply.Body)
	if err != nil {
		return f.unexpectedCheckFailure(span, "", err)
	}

	result, err := provider.MapResponse(raw)
	if err != nil {
		return f.unexpectedCheckFailure(span, raw.Header.TransactionID, err)
	}
	return result
}

func (f *Fraudcheck) unexpectedCheckFailure(span trace.Span, transactionID string, err error) *model.FraudCheckResult {
	span.RecordError(err)
	logrus.Errorf("fraud check failed unexpectedly: %v", err)
	return model.NewFailedFraudCheckResult(genericFailureMessage+": "+err.Error(), transactionID)
}

func (f *Fraudcheck) unexpectedFailure(span trace.Span, transactionID string, err error) *model.VerificationResult {
	span.RecordError(err)
	logrus.Errorf("identity verification failed unexpectedly: %v", err)
	return &model.VerificationResult{
		Success:          false,
		Contraindicators: []string{},
		Error:            genericFailureMessage + ": " + err.Error(),
		TransactionID:    transactionID,
	}
}
