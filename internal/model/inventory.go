package model

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

// ProductInventory maps production.product_inventory.
// The key is composite: (product id, location id).
type ProductInventory struct {
	ProductID    int       `json:"productId" db:"product_id"`
	LocationID   int16     `json:"locationId" db:"location_id"`
	Shelf        string    `json:"shelf" db:"shelf"`
	Bin          int16     `json:"bin" db:"bin"`
	Quantity     int16     `json:"quantity" db:"quantity"`
	ModifiedDate time.Time `json:"modifiedDate" db:"modified_date"`
}

// InventoryPageDefinition describes search and sort for in-memory pagination
// of inventory rows. Inventory lists are small enough to materialize, so the
// paged endpoint fetches all rows and pages them in process with the same
// semantics the SQL-backed lists use.
func InventoryPageDefinition() paginate.Definition[ProductInventory] {
	return paginate.Definition[ProductInventory]{
		SearchFields: func(i ProductInventory) []string {
			return []string{
				strconv.Itoa(i.ProductID),
				strconv.Itoa(int(i.LocationID)),
				i.Shelf,
				strconv.Itoa(int(i.Bin)),
			}
		},
		Sorts: map[string]func(a, b ProductInventory) int{
			"productid":  func(a, b ProductInventory) int { return cmp.Compare(a.ProductID, b.ProductID) },
			"locationid": func(a, b ProductInventory) int { return cmp.Compare(a.LocationID, b.LocationID) },
			"quantity":   func(a, b ProductInventory) int { return cmp.Compare(a.Quantity, b.Quantity) },
			"shelf":      func(a, b ProductInventory) int { return strings.Compare(a.Shelf, b.Shelf) },
			"bin":        func(a, b ProductInventory) int { return cmp.Compare(a.Bin, b.Bin) },
		},
		DefaultSort: "productid",
	}
}
