package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", validator.ValidationErrors{{Field: "page", Message: "bad"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"revoked", fmt.Errorf("wrapped: %w", auth.ErrTokenRevoked), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"role", auth.ErrRoleNotAllowed, http.StatusForbidden, "FORBIDDEN"},
		{"not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"loading", employee.ErrLoadInProgress, http.StatusConflict, "CONFLICT"},
		{"exhausted", employee.ErrNoMorePages, http.StatusConflict, "CONFLICT"},
		{"source down", fmt.Errorf("failed to load employees: %w", employee.ErrSourceUnavailable), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{{Field: "ratings", Message: "ratings must be between 1 and 5"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ratings must be between 1 and 5", body.Error.Details["ratings"])
}
