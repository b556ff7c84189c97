//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"laundromat-api/internal/handler/httperr"
	"laundromat-api/internal/handler/middleware"
	"laundromat-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandler_LogsKind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLevel  string
		wantKind   string
	}{
		{"conflict is a warning", errs.Mark(errs.New("slot taken"), errs.ErrConflict), http.StatusConflict, "WARN", "CONFLICT"},
		{"insufficient balance is a warning", errs.Mark(errs.New("credit too low"), errs.ErrInsufficientBalance), http.StatusPaymentRequired, "WARN", "INSUFFICIENT_BALANCE"},
		{"unmarked failure is an error", errs.New("connection reset"), http.StatusInternalServerError, "ERROR", "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/fail", func(c *gin.Context) { httperr.AbortWithKind(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry), logs.String())
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantKind, entry["kind"])
			assert.Equal(t, float64(tt.wantStatus), entry["status"])
			assert.Equal(t, "/fail", entry["path"])
		})
	}
}

func TestErrorHandler_WritesPendingPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	captureLogs(t)

	resp := httperr.Response{Status: http.StatusForbidden}
	resp.Error.Message = "not yours"

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/deferred", func(c *gin.Context) {
		_ = c.Error(&gin.Error{Err: errs.Mark(errs.New("not yours"), errs.ErrForbidden), Type: gin.ErrorTypePublic, Meta: resp})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deferred", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":{"message":"not yours"}}`, w.Body.String())
}
