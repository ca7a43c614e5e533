// Package surface describes the hosted payment surface: how to build its URL
// for a session and which origin its messages must come from.
package surface

import (
	"fmt"
	"net/url"
	"strings"

	sharedConfig "mentorhub/internal/shared/config"
)

// Surface is the external payment collaborator. Opaque: the only contract is
// the URL template we render into an iframe and the origin whose messages we
// trust.
type Surface struct {
	urlTemplate   string
	trustedOrigin string
}

func New(cfg *sharedConfig.PaymentConfig) (*Surface, error) {
	if cfg.SurfaceURLTemplate == "" {
		return nil, fmt.Errorf("payment surface URL template is required")
	}
	origin, err := normalizeOrigin(cfg.ProviderOrigin)
	if err != nil {
		return nil, err
	}
	return &Surface{
		urlTemplate:   cfg.SurfaceURLTemplate,
		trustedOrigin: origin,
	}, nil
}

// URLFor expands the surface URL template for one session. Placeholders:
// {record}, {domain}, {email}.
func (s *Surface) URLFor(recordSID, domainSlug, userEmail string) string {
	r := strings.NewReplacer(
		"{record}", url.QueryEscape(recordSID),
		"{domain}", url.QueryEscape(domainSlug),
		"{email}", url.QueryEscape(userEmail),
	)
	return r.Replace(s.urlTemplate)
}

// TrustedOrigin is the only origin whose signals may be trusted.
func (s *Surface) TrustedOrigin() string {
	return s.trustedOrigin
}

// normalizeOrigin validates the configured provider origin and strips any
// path so comparisons stay exact scheme://host[:port] matches.
func normalizeOrigin(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("payment provider origin is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid payment provider origin %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("payment provider origin %q must include scheme and host", raw)
	}
	return u.Scheme + "://" + u.Host, nil
}
