package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/auth-system/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		logged   bool
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "invalid token", false},
		{"missing param", domain.NewMissingParamError("email"), http.StatusBadRequest, "missing param: email", false},
		{"invalid param", domain.NewInvalidParamError("userId"), http.StatusBadRequest, "invalid param: userId", false},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists", false},
		{"missing dependency", domain.NewMissingDependencyError("encrypter"), http.StatusInternalServerError, "internal server error", true},
		{"collaborator failure", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := echo.New()
			e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.New(&logs))

			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/login", nil), rec)
			e.HTTPErrorHandler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, resp.Error)
			}
			if logged := strings.Contains(logs.String(), "unhandled error"); logged != tc.logged {
				t.Fatalf("expected logged=%v, logs: %s", tc.logged, logs.String())
			}
		})
	}
}
