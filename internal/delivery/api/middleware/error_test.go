package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "invalid credentials",
			err:        domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"message":"Invalid email or password"}}`,
		},
		{
			name:       "duplicate customer",
			err:        domainerrors.ErrCustomerAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"message":"Email is already registered"}}`,
		},
		{
			name:       "internal error hides cause",
			err:        errors.Wrap(errors.Join(domainerrors.ErrInternalError, errors.New("pq: password authentication failed")), "lookup"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error"}}`,
			wantLogged: true,
		},
		{
			name:       "database error hides driver message",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("relation does not exist"), "insert"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error"}}`,
			wantLogged: true,
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"Not Found"}}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error"}}`,
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/users/session", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantLogged, buf.Len() > 0)
		})
	}
}
