package provider

import (
	"context"
	"errors"

	"github.com/dmfrolov/salarystats/internal/models"
)

// ErrAreaNotFound is returned when a city lookup yields no match.
var ErrAreaNotFound = errors.New("area not found")

// Provider is one vacancy data source. Area resolution happens once per
// run; the returned id is then passed into every SearchVacancies call.
type Provider interface {
	// Name identifies the provider in report titles and error messages.
	Name() string

	// ResolveArea maps a human-readable city name to the provider's
	// opaque area identifier.
	ResolveArea(ctx context.Context, city string) (string, error)

	// SearchVacancies pages through the provider's search endpoint for
	// the given free-text query, accumulating every result. areaID may
	// be empty to search without a geographic filter.
	SearchVacancies(ctx context.Context, query, areaID string) ([]models.Vacancy, error)

	// RubCurrency is the provider's spelling of the Russian ruble in
	// salary blocks.
	RubCurrency() string
}
