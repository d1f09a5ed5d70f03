package v1

import (
	"context"
	"errors"

	"github.com/vmunix/dracin/internal/catalog"
	"github.com/vmunix/dracin/pkg/normalize"
)

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks github.com/vmunix/dracin/internal/api/v1 Catalog,Providers

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog serves normalized catalog data. *catalog.Service satisfies it.
type Catalog interface {
	Home(ctx context.Context, provider string, page int) ([]normalize.Drama, error)
	Recommend(ctx context.Context, provider string, page int) ([]normalize.Drama, error)
	VIP(ctx context.Context, provider string, page int) ([]normalize.Drama, error)
	Search(ctx context.Context, provider, query string) ([]normalize.Drama, error)
	Categories(ctx context.Context, provider string) ([]normalize.Category, error)
	Category(ctx context.Context, provider string, id, page int) ([]normalize.Drama, error)
	ByType(ctx context.Context, provider, kind string, page int) ([]normalize.Drama, error)
	Detail(ctx context.Context, provider, bookID string) (normalize.Drama, error)
	Episodes(ctx context.Context, provider, bookID string) ([]normalize.Episode, error)
	Play(ctx context.Context, provider, bookID string, episode int) (normalize.Episode, error)
	Stream(ctx context.Context, provider, bookID string, episode int) ([]normalize.QualityOption, error)
	Lookup(ctx context.Context, provider, title string) (*catalog.LookupResult, error)
}

// Providers reports the configured upstream providers. *upstream.Client
// satisfies it.
type Providers interface {
	Providers() []string
	DefaultProvider() string
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Catalog   Catalog
	Providers Providers
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	if d.Providers == nil {
		return errors.New("providers are required")
	}
	return nil
}
