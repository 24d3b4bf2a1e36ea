package assets

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	RepositoriesCount    = 6
	BatchesPerRepository = 7

	// DefaultHostTemplate receives the 1-based repository number
	DefaultHostTemplate = "https://ff-repo-%d.vercel.app"
)

// Repository is one of the external hosts serving assets split into batches.
// Each repository owns its own contiguous range of batch numbers.
type Repository struct {
	Number int
	Host   string
}

func NewRepositories(hostTemplate string) []*Repository {
	if hostTemplate == "" {
		hostTemplate = DefaultHostTemplate
	}

	result := make([]*Repository, RepositoriesCount)
	for i := range result {
		number := i + 1
		result[i] = &Repository{
			Number: number,
			Host:   strings.TrimSuffix(fmt.Sprintf(hostTemplate, number), "/"),
		}
	}

	return result
}

// Batches returns the inclusive range of batch numbers served by the repository
func (r *Repository) Batches() (first int, last int) {
	return (r.Number-1)*BatchesPerRepository + 1, r.Number * BatchesPerRepository
}

func (r *Repository) Url(assetId string, batch int) string {
	return fmt.Sprintf("%s/%s/batch_%d.png", r.Host, url.PathEscape(assetId), batch)
}

// IsPresent reports whether the identifier refers to an actual asset.
// Empty values and zero mean "no asset".
func IsPresent(assetId string) bool {
	assetId = strings.TrimSpace(assetId)

	return assetId != "" && assetId != "0"
}
