// Package identity exposes the identity provider to the storefront: who is
// calling, and where to send them to log in. Token verification happens in
// front of the storefront; this package only reads what that layer forwards.
package identity

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const (
	HeaderSubject = "X-Auth-Subject"
	HeaderEmail   = "X-Auth-Email"
	CookieToken   = "eats_token"
)

type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Token   string `json:"-"`
}

type Provider interface {
	CurrentUser(r *http.Request) (Identity, bool)
	LoginRedirectURL(returnTo string) string
}

type Config struct {
	Domain      string
	ClientID    string
	Audience    string
	CallbackURL string
}

// HeaderProvider reads the identity forwarded by the auth proxy: the bearer
// token (header or cookie) plus subject and email headers.
type HeaderProvider struct {
	config Config
}

func NewHeaderProvider(config Config) *HeaderProvider {
	return &HeaderProvider{config: config}
}

func (p *HeaderProvider) CurrentUser(r *http.Request) (Identity, bool) {
	id := Identity{
		Subject: strings.TrimSpace(r.Header.Get(HeaderSubject)),
		Email:   strings.TrimSpace(r.Header.Get(HeaderEmail)),
		Token:   bearerToken(r),
	}
	if id.Subject == "" || id.Token == "" {
		return Identity{}, false
	}
	return id, true
}

func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if c, err := r.Cookie(CookieToken); err == nil {
		return c.Value
	}
	return ""
}

type loginState struct {
	ReturnTo string `json:"returnTo"`
}

// LoginRedirectURL builds the authorize URL. returnTo rides along in the
// state parameter and comes back to the callback.
func (p *HeaderProvider) LoginRedirectURL(returnTo string) string {
	state, _ := json.Marshal(loginState{ReturnTo: SafeReturnTo(returnTo)})

	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", p.config.ClientID)
	params.Set("redirect_uri", p.config.CallbackURL)
	params.Set("scope", "openid profile email")
	if p.config.Audience != "" {
		params.Set("audience", p.config.Audience)
	}
	params.Set("state", base64.RawURLEncoding.EncodeToString(state))

	return "https://" + p.config.Domain + "/authorize?" + params.Encode()
}

// ReturnToFromState decodes the state parameter handed back to the callback.
// Anything unreadable or pointing off-site becomes "/".
func ReturnToFromState(state string) string {
	raw, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		return "/"
	}
	var s loginState
	if err := json.Unmarshal(raw, &s); err != nil {
		return "/"
	}
	return SafeReturnTo(s.ReturnTo)
}

// SafeReturnTo only lets local absolute paths through. Browsers strip tab and
// newline when parsing, so "/\t/host" would become "//host"; any control
// character rejects the value.
func SafeReturnTo(returnTo string) string {
	if !strings.HasPrefix(returnTo, "/") || strings.HasPrefix(returnTo, "//") || strings.Contains(returnTo, `\`) {
		return "/"
	}
	for i := 0; i < len(returnTo); i++ {
		if b := returnTo[i]; b < 0x20 || b == 0x7f {
			return "/"
		}
	}
	u, err := url.Parse(returnTo)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return "/"
	}
	return returnTo
}
