package pricing

import (
	"sort"

	"numbeo/internal/models"
)

// ItemIndex maps an item identifier to its catalog metadata
type ItemIndex map[int64]models.ItemMetadata

// Indexable reports whether a catalog record carries a well-formed integer identifier
func Indexable(item models.ItemMetadata) bool {
	return item.ItemID.Valid
}

// BuildItemIndex builds the lookup table used to join prices with the catalog.
// Records without a usable identifier are skipped; on duplicate identifiers
// the later record wins.
func BuildItemIndex(items []models.ItemMetadata) ItemIndex {
	index := make(ItemIndex, len(items))
	for _, item := range items {
		if !Indexable(item) {
			continue
		}
		index[item.ItemID.Value] = item
	}
	return index
}

// SortedCatalog returns the indexed items in display order, then by name and id
func (idx ItemIndex) SortedCatalog() []models.ItemMetadata {
	items := make([]models.ItemMetadata, 0, len(idx))
	for _, item := range idx {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		oi := items[i].DisplayOrder.Or(DefaultDisplayOrder)
		oj := items[j].DisplayOrder.Or(DefaultDisplayOrder)
		if oi != oj {
			return oi < oj
		}
		ni, nj := items[i].Name.Or(Placeholder), items[j].Name.Or(Placeholder)
		if ni != nj {
			return ni < nj
		}
		return items[i].ItemID.Value < items[j].ItemID.Value
	})

	return items
}
