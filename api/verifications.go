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
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	fraudcheck "github.com/truna-id/fraudcheck"
	model "github.com/truna-id/fraudcheck/api/model"
	"github.com/truna-id/fraudcheck/internal/apierror"
)

// VerifyIdentity runs a fraud check for the submitted identity and returns
// the verification result. The pipeline itself never errors; a failed
// check still comes back 200 with success=false so callers can read the
// validation errors or failure description.
//
// Responses:
// - 400 Bad Request: If the request body cannot be parsed or fails validation.
// - 200 OK: The verification result, success or failure.
func (a Api) VerifyIdentity(c *gin.Context) {
	var req model.VerifyIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := apierror.NewAPIError(apierror.ErrBadRequest, "invalid request payload", err.Error())
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	if err := req.ValidateVerifyIdentityRequest(); err != nil {
		apiErr := apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), err.Error())
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	identity, err := req.ToIdentity()
	if err != nil {
		apiErr := apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), err.Error())
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	result := a.service.VerifyIdentity(c.Request.Context(), identity)

	if err := fraudcheck.SendAudit(fraudcheck.NewAuditEvent(result)); err != nil {
		// audit delivery is observational; the result still goes out
		logrus.Warnf("failed to enqueue audit event: %v", err)
	}

	c.JSON(http.StatusOK, result)
}
