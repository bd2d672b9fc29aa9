package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookreview/internal/auth"
	"bookreview/internal/credential"
	"bookreview/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register(t *testing.T) {
	handler := NewUserHandler(credential.NewStore(), "test-secret")

	tests := []struct {
		name           string
		body           any
		rawBody        string
		expectedStatus int
	}{
		{
			name:           "success",
			body:           map[string]string{"username": "alice", "password": "pw1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate username",
			body:           map[string]string{"username": "alice", "password": "pw2"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing password",
			body:           map[string]string{"username": "bob"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing both fields",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r *http.Request
			if tt.rawBody != "" {
				r = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.rawBody))
			} else {
				r = testutil.NewRequest(http.MethodPost, "/register", tt.body)
			}
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusCreated {
				assert.NotEmpty(t, testutil.DecodeBody(w)["error"])
			}
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	users := credential.NewStore()
	require.NoError(t, users.Register("alice", "pw1"))
	handler := NewUserHandler(users, "test-secret")

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			body:           map[string]string{"username": "alice", "password": "pw1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           map[string]string{"username": "alice", "password": "pw2"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown user",
			body:           map[string]string{"username": "mallory", "password": "pw1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing fields",
			body:           map[string]string{},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, testutil.NewRequest(http.MethodPost, "/login", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				token, _ := testutil.DecodeBody(w)["token"].(string)
				require.NotEmpty(t, token)

				claims, err := auth.ParseToken("test-secret", token)
				require.NoError(t, err)
				assert.Equal(t, "alice", claims.Username)
			}
		})
	}
}
