package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(ErrInvalidInput, "dob is malformed", nil)
	assert.Equal(t, "INVALID_INPUT: dob is malformed", err.Error())
}

func TestMapErrorToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MapErrorToHTTPStatus(NewAPIError(ErrBadRequest, "bad body", nil)))
	assert.Equal(t, http.StatusBadRequest, MapErrorToHTTPStatus(NewAPIError(ErrInvalidInput, "bad dob", nil)))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToHTTPStatus(NewAPIError(ErrInternalServer, "boom", nil)))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToHTTPStatus(errors.New("unclassified")))
}
