package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dreed/habit-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]any
		setup          func()
		expectedStatus int
		expectedError  string
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]any{
				"name":     "A",
				"email":    "a@x.com",
				"password": "secret1",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var user testutil.UserPayload
				testutil.AssertJSONResponse(t, resp, &user)
				assert.NotZero(t, user.ID)
				assert.Equal(t, "A", user.Name)
				assert.Equal(t, "a@x.com", user.Email)
				assert.Equal(t, 1, user.AvatarID)
			},
		},
		{
			name: "password never serialized",
			request: map[string]any{
				"name":     "B",
				"email":    "b@x.com",
				"password": "secret1",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var raw map[string]any
				testutil.AssertJSONResponse(t, resp, &raw)
				assert.NotContains(t, raw, "password")
				assert.NotContains(t, raw, "password_hash")
			},
		},
		{
			name: "missing name",
			request: map[string]any{
				"email":    "c@x.com",
				"password": "secret1",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "required",
		},
		{
			name: "malformed email",
			request: map[string]any{
				"name":     "D",
				"email":    "dx.com",
				"password": "secret1",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid email",
		},
		{
			name: "short password",
			request: map[string]any{
				"name":     "E",
				"email":    "e@x.com",
				"password": "12345",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "at least 6 characters",
		},
		{
			name: "duplicate email",
			request: map[string]any{
				"name":     "F",
				"email":    "taken@x.com",
				"password": "secret1",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@x.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.URL("/register"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			if tt.expectedError != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedError)
				return
			}

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@x.com").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    user.Email,
				"password": "nope-not-it",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "ghost@x.com",
				"password": rawPassword,
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var login testutil.LoginPayload
				testutil.AssertJSONResponse(t, resp, &login)
				assert.NotEmpty(t, login.Token)
				assert.Equal(t, user.ID, login.User.ID)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// The token works before logout
	resp := testutil.DoRequest(t, ts, http.MethodGet, "/habits", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = testutil.DoRequest(t, ts, http.MethodPost, "/logout", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	// Any protected request with the same token now fails
	resp = testutil.DoRequest(t, ts, http.MethodGet, "/habits", token, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "invalid token")
	resp.Body.Close()

	// Logging out twice is a 401: the token is already gone
	resp = testutil.DoRequest(t, ts, http.MethodPost, "/logout", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	resp.Body.Close()
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoRequest(t, ts, http.MethodGet, "/habits", "", nil)
	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "missing token")
	resp.Body.Close()

	resp = testutil.DoRequest(t, ts, http.MethodGet, "/todos", "made-up-token", nil)
	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "invalid token")
	resp.Body.Close()
}
