package webhookpublisher

import (
	"net/url"
	"strings"
)

// Endpoint is a remote offer book notified about offers added and removed.
// If Secret is set, requests are authenticated with a HS256 signed token.
type Endpoint struct {
	URL    string
	Secret string
}

func NewEndpoint(rawURL, secret string) (*Endpoint, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, ErrInvalidEndpoint
	}
	return &Endpoint{rawURL, secret}, nil
}

// ParseEndpoints parses a list of endpoints each in the form url[#secret].
// Endpoints without their own secret use the default one.
func ParseEndpoints(list []string, defaultSecret string) ([]Endpoint, error) {
	endpoints := make([]Endpoint, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if len(s) <= 0 {
			continue
		}

		rawURL, secret := s, defaultSecret
		if i := strings.LastIndex(s, "#"); i >= 0 {
			rawURL, secret = s[:i], s[i+1:]
			if len(secret) <= 0 {
				return nil, ErrInvalidEndpointFormat
			}
		}

		endpoint, err := NewEndpoint(rawURL, secret)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, *endpoint)
	}
	return endpoints, nil
}

func (e Endpoint) IsSecured() bool {
	return len(e.Secret) > 0
}
