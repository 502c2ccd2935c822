package homey

import "context"

// TokenProvider supplies a bearer token for the platform API. It exists so
// a real OAuth2 client-credentials exchange (with caching and refresh) can
// replace the static provider without touching the request path.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider returns the client secret as the bearer token.
//
// This is NOT a real credential exchange and must not be used against a
// production account: the Homey cloud expects an OAuth2 authorization-code
// or client-credentials grant. It matches the reference behavior and keeps
// the request path testable.
type StaticTokenProvider struct {
	cfg Config
}

// NewStaticTokenProvider creates a provider for the given configuration.
func NewStaticTokenProvider(cfg Config) *StaticTokenProvider {
	return &StaticTokenProvider{cfg: cfg}
}

// Token returns the configured client secret, or a configuration error when
// either credential is missing. No network call is made.
func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if err := p.cfg.Validate(); err != nil {
		return "", err
	}
	return p.cfg.ClientSecret, nil
}
