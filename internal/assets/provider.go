package assets

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
)

type Emitter interface {
	Emit(name string, args ...interface{})
}

// Outcome is the result of a single attempt to download an asset from some batch
type Outcome int

const (
	// Hit means the asset was found and downloaded
	Hit Outcome = iota
	// MissContinue means the batch doesn't have the asset and the next one should be checked
	MissContinue
	// MissAbandonRepository means the repository is unreachable, so its remaining batches are skipped
	MissAbandonRepository
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case MissContinue:
		return "miss"
	case MissAbandonRepository:
		return "abandon"
	}

	return "unknown"
}

type Provider struct {
	Emitter

	http         *http.Client
	repositories []*Repository
}

func NewProvider(http *http.Client, emitter Emitter, hostTemplate string) *Provider {
	return &Provider{
		Emitter:      emitter,
		http:         http,
		repositories: NewRepositories(hostTemplate),
	}
}

// Fetch scans repositories in order and returns the content of the first batch having the asset.
// The nil result without an error means that the asset wasn't found anywhere, which is a normal outcome.
func (p *Provider) Fetch(ctx context.Context, assetId string) ([]byte, error) {
	assetId = strings.TrimSpace(assetId)
	if !IsPresent(assetId) {
		return nil, nil
	}

	for _, repository := range p.repositories {
		first, last := repository.Batches()
	batches:
		for batch := first; batch <= last; batch++ {
			content, outcome, _ := p.attempt(ctx, repository.Url(assetId, batch))
			switch outcome {
			case Hit:
				return content, nil
			case MissAbandonRepository:
				break batches
			}

			// The context error will fail each following attempt, so there is no reason to continue
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil
}

func (p *Provider) attempt(ctx context.Context, url string) (content []byte, outcome Outcome, err error) {
	defer func() {
		p.Emit("assets:attempt", url, outcome, err)
	}()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, MissContinue, err
	}

	response, err := p.http.Do(request)
	if err != nil {
		if isConnectionError(err) {
			return nil, MissAbandonRepository, err
		}

		return nil, MissContinue, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil, MissContinue, nil
	}

	content, err = io.ReadAll(response.Body)
	if err != nil {
		return nil, MissContinue, err
	}

	return content, Hit, nil
}

// isConnectionError detects failures to establish a connection with the host:
// unresolvable names, refused or reset dials. Timeouts aren't treated as such.
func isConnectionError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return false
}
