package output

import (
	"numbeo/internal/models"
	"numbeo/internal/pricing"
)

// CatalogHeaders are the column labels of the item catalog table
var CatalogHeaders = []string{"ID", "Order", "Category", "Item"}

// RenderCatalog renders catalog entries, already in display order, as a table.
// Missing fields are shown as "-".
func RenderCatalog(items []models.ItemMetadata) string {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = []any{
			item.ItemID,
			item.DisplayOrder,
			item.Category.Or(pricing.Placeholder),
			nonEmpty(item.Name.Or("")),
		}
	}
	return RenderTable(CatalogHeaders, rows)
}

func nonEmpty(s string) string {
	if s == "" {
		return pricing.Placeholder
	}
	return s
}
