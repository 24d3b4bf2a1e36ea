package di

import (
	"net/http"
	"time"

	"github.com/defval/di"
	"github.com/spf13/viper"
)

var httpClientDiOptions = di.Options(
	di.Provide(newHttpClient),
)

// newHttpClient creates the client shared by all outgoing requests
func newHttpClient(config *viper.Viper) (*http.Client, func(), error) {
	config.SetDefault("http.timeout", 10*time.Second)
	config.SetDefault("http.user_agent", "Mozilla/5.0")

	client := &http.Client{
		Timeout: config.GetDuration("http.timeout"),
		Transport: &userAgentTransport{
			RoundTripper: http.DefaultTransport,
			userAgent:    config.GetString("http.user_agent"),
		},
	}

	return client, client.CloseIdleConnections, nil
}

type userAgentTransport struct {
	http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.RoundTripper.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)

	return t.RoundTripper.RoundTrip(req)
}

func (t *userAgentTransport) CloseIdleConnections() {
	if closer, ok := t.RoundTripper.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}
