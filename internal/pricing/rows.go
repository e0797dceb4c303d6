package pricing

import (
	"sort"
	"time"

	"numbeo/internal/models"
)

// DefaultDisplayOrder sorts items without catalog metadata after catalogued ones.
const DefaultDisplayOrder int64 = 10000

// BuildRows joins every price entry with its catalog metadata and returns the
// rows sorted by display order, then name. Each entry yields exactly one row;
// entries without metadata fall back to defaults.
func BuildRows(prices []models.PriceEntry, index ItemIndex, currency string) []models.Row {
	rows := make([]models.Row, 0, len(prices))
	for _, entry := range prices {
		rows = append(rows, buildRow(entry, index, currency))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DisplayOrder != rows[j].DisplayOrder {
			return rows[i].DisplayOrder < rows[j].DisplayOrder
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}

func buildRow(entry models.PriceEntry, index ItemIndex, currency string) models.Row {
	var meta models.ItemMetadata
	if entry.ItemID.Valid {
		meta = index[entry.ItemID.Value]
	}

	return models.Row{
		DisplayOrder: meta.DisplayOrder.Or(DefaultDisplayOrder),
		Category:     meta.Category.Or(Placeholder),
		Name:         resolveName(meta, entry),
		Average:      FormatMoney(entry.AveragePrice, currency),
		Lowest:       FormatMoney(entry.LowestPrice, currency),
		Highest:      FormatMoney(entry.HighestPrice, currency),
		DataPoints:   entry.DataPoints,
	}
}

// resolveName prefers the catalog name, then the entry's own item_name
func resolveName(meta models.ItemMetadata, entry models.PriceEntry) string {
	if meta.Name.Valid && meta.Name.Value != "" {
		return meta.Name.Value
	}
	if entry.ItemName.Valid && entry.ItemName.Value != "" {
		return entry.ItemName.Value
	}
	return Placeholder
}

// BuildReport runs the whole join for one city. fallbackCity is used when the
// API does not echo a city name back.
func BuildReport(items []models.ItemMetadata, prices *models.CityPrices, fallbackCity string, generatedAt time.Time) *models.Report {
	city := prices.Name
	if city == "" {
		city = fallbackCity
	}

	return &models.Report{
		City:        city,
		Currency:    prices.Currency,
		Rows:        BuildRows(prices.Prices, BuildItemIndex(items), prices.Currency),
		GeneratedAt: generatedAt,
	}
}
