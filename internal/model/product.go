package model

import (
	"time"

	"github.com/google/uuid"
)

// Product maps production.product.
type Product struct {
	ProductID             int        `json:"productId" db:"product_id"`
	Name                  string     `json:"name" db:"name"`
	ProductNumber         string     `json:"productNumber" db:"product_number"`
	MakeFlag              bool       `json:"makeFlag" db:"make_flag"`
	FinishedGoodsFlag     bool       `json:"finishedGoodsFlag" db:"finished_goods_flag"`
	Color                 *string    `json:"color" db:"color"`
	SafetyStockLevel      int16      `json:"safetyStockLevel" db:"safety_stock_level"`
	ReorderPoint          int16      `json:"reorderPoint" db:"reorder_point"`
	StandardCost          float64    `json:"standardCost" db:"standard_cost"`
	ListPrice             float64    `json:"listPrice" db:"list_price"`
	Size                  *string    `json:"size" db:"size"`
	SizeUnitMeasureCode   *string    `json:"sizeUnitMeasureCode" db:"size_unit_measure_code"`
	WeightUnitMeasureCode *string    `json:"weightUnitMeasureCode" db:"weight_unit_measure_code"`
	Weight                *float64   `json:"weight" db:"weight"`
	DaysToManufacture     int        `json:"daysToManufacture" db:"days_to_manufacture"`
	ProductLine           *string    `json:"productLine" db:"product_line"`
	Class                 *string    `json:"class" db:"class"`
	Style                 *string    `json:"style" db:"style"`
	ProductSubcategoryID  *int       `json:"productSubcategoryId" db:"product_subcategory_id"`
	ProductModelID        *int       `json:"productModelId" db:"product_model_id"`
	SellStartDate         time.Time  `json:"sellStartDate" db:"sell_start_date"`
	SellEndDate           *time.Time `json:"sellEndDate" db:"sell_end_date"`
	DiscontinuedDate      *time.Time `json:"discontinuedDate" db:"discontinued_date"`
	RowGUID               uuid.UUID  `json:"rowguid" db:"rowguid"`
	ModifiedDate          time.Time  `json:"modifiedDate" db:"modified_date"`
}

// ProductSortFields maps client sort names to product columns.
var ProductSortFields = map[string]string{
	"productid":     "product_id",
	"name":          "name",
	"productnumber": "product_number",
	"listprice":     "list_price",
	"standardcost":  "standard_cost",
	"sellstartdate": "sell_start_date",
}

const ProductDefaultSort = "productid"
