package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sakeenah/internal/delivery/http/helpers"
	"sakeenah/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	subject string
	err     error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

func TestRequireAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name        string
		authHeader  string
		verifier    domain.TokenVerifier
		wantStatus  int
		nextCalled  bool
		wantSubject string
	}{
		{
			name:        "valid token sets context and calls next",
			authHeader:  "Bearer valid-token",
			verifier:    &fakeTokenVerifier{subject: "admin"},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantSubject: "admin",
		},
		{
			name:        "scheme is case insensitive",
			authHeader:  "bearer valid-token",
			verifier:    &fakeTokenVerifier{subject: "admin"},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantSubject: "admin",
		},
		{
			name:       "missing header",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer   ",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verifier rejects",
			authHeader: "Bearer expired",
			verifier:   &fakeTokenVerifier{err: errors.New("token expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotSubject, _ = AdminSubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireAdmin(tt.verifier, logger)(next)

			req := httptest.NewRequest(http.MethodDelete, "/api/uid/wishes/1", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, called)
			assert.Equal(t, tt.wantSubject, gotSubject)
			if !tt.nextCalled {
				var resp helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.False(t, resp.Success)
				assert.Equal(t, helpers.MsgUnauthorized, resp.Error)
			}
		})
	}
}
