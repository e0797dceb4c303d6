package interfaces

import (
	"context"

	"numbeo/internal/models"
)

// PriceClient defines the interface for retrieving data from the Numbeo API
type PriceClient interface {
	// Items retrieves the item catalog
	Items(ctx context.Context) ([]models.ItemMetadata, error)

	// CityPrices retrieves price observations for a "City, Country" query
	CityPrices(ctx context.Context, query string) (*models.CityPrices, error)

	// FetchAll retrieves the catalog and the city prices together
	FetchAll(ctx context.Context, query string) ([]models.ItemMetadata, *models.CityPrices, error)
}

// OutputFormatter defines the interface for formatting cost-of-living reports
type OutputFormatter interface {
	// Format formats the report according to the formatter's type
	Format(report *models.Report) (string, error)

	// FormatType returns the format type (e.g., "table", "json", "csv")
	FormatType() string
}
