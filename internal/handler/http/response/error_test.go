package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/timegate"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "pin", Message: "pin is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"invalid pin", auth.ErrInvalidPIN, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"manager required", auth.ErrManagerRequired, http.StatusForbidden, "FORBIDDEN"},
		{"gate closed", attendance.ErrSubmissionNotOpen, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate", attendance.ErrAlreadySubmittedToday, http.StatusConflict, "CONFLICT"},
		{"wrapped not found", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"toolbox input", toolbox.ErrDegenerateInterpolation, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleError_GateMessage(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, attendance.ErrSubmissionNotOpen)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, timegate.MessageBlocked, resp.Error.Message)
}
