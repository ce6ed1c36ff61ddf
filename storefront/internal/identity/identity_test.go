package identity

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderProvider_CurrentUser(t *testing.T) {
	provider := NewHeaderProvider(Config{})

	tests := []struct {
		name          string
		prepare       func(r *http.Request)
		expectedOK    bool
		expectedToken string
	}{
		{
			name: "bearer_header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer abc")
				r.Header.Set(HeaderSubject, "auth0|1")
				r.Header.Set(HeaderEmail, "sam@example.com")
			},
			expectedOK:    true,
			expectedToken: "abc",
		},
		{
			name: "token_cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieToken, Value: "from-cookie"})
				r.Header.Set(HeaderSubject, "auth0|1")
			},
			expectedOK:    true,
			expectedToken: "from-cookie",
		},
		{
			name: "no_subject",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer abc")
			},
		},
		{
			name: "not_bearer",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
				r.Header.Set(HeaderSubject, "auth0|1")
			},
		},
		{
			name:    "anonymous",
			prepare: func(r *http.Request) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			testCase.prepare(req)

			id, ok := provider.CurrentUser(req)
			assert.Equal(t, testCase.expectedOK, ok)
			assert.Equal(t, testCase.expectedToken, id.Token)
			if ok {
				assert.Equal(t, "auth0|1", id.Subject)
			}
		})
	}
}

func TestHeaderProvider_LoginRedirectURL(t *testing.T) {
	provider := NewHeaderProvider(Config{
		Domain:      "eats.eu.auth0.com",
		ClientID:    "client-1",
		Audience:    "eats-api",
		CallbackURL: "http://localhost:8080/api/auth/callback",
	})

	raw := provider.LoginRedirectURL("/detail/r1")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "eats.eu.auth0.com", u.Host)
	assert.Equal(t, "/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "eats-api", q.Get("audience"))
	assert.Equal(t, "http://localhost:8080/api/auth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "/detail/r1", ReturnToFromState(q.Get("state")))
}

func TestReturnToFromState_Rejects(t *testing.T) {
	provider := NewHeaderProvider(Config{Domain: "d"})
	offsite, _ := url.Parse(provider.LoginRedirectURL("https://evil.example"))

	assert.Equal(t, "/", ReturnToFromState(offsite.Query().Get("state")))
	assert.Equal(t, "/", ReturnToFromState("!!not base64"))
	assert.Equal(t, "/", ReturnToFromState(""))
}

func TestSafeReturnTo(t *testing.T) {
	tests := []struct {
		name     string
		returnTo string
		want     string
	}{
		{name: "local path", returnTo: "/user-profile", want: "/user-profile"},
		{name: "local path with query", returnTo: "/search/london?page=2", want: "/search/london?page=2"},
		{name: "protocol relative", returnTo: "//evil.example", want: "/"},
		{name: "backslash", returnTo: "/\\evil.example", want: "/"},
		{name: "relative", returnTo: "detail/1", want: "/"},
		{name: "absolute url", returnTo: "https://evil.example/x", want: "/"},
		{name: "tab", returnTo: "/\t/evil.com", want: "/"},
		{name: "newline", returnTo: "/\n/evil.com", want: "/"},
		{name: "carriage return", returnTo: "/\r/evil.com", want: "/"},
		{name: "nul", returnTo: "/\x00/evil.com", want: "/"},
		{name: "delete", returnTo: "/\x7f/evil.com", want: "/"},
		{name: "empty", returnTo: "", want: "/"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, SafeReturnTo(testCase.returnTo))
		})
	}
}

func TestReturnToFromState_ControlCharactersDoNotSurviveRoundTrip(t *testing.T) {
	provider := NewHeaderProvider(Config{Domain: "d"})
	for _, returnTo := range []string{"/\t/evil.com", "/\n/evil.com", "/\r/evil.com"} {
		loginURL, err := url.Parse(provider.LoginRedirectURL(returnTo))
		require.NoError(t, err)
		assert.Equal(t, "/", ReturnToFromState(loginURL.Query().Get("state")))

		// a state forged without going through LoginRedirectURL
		raw, err := json.Marshal(map[string]string{"returnTo": returnTo})
		require.NoError(t, err)
		forged := base64.RawURLEncoding.EncodeToString(raw)
		assert.Equal(t, "/", ReturnToFromState(forged))
	}
}
