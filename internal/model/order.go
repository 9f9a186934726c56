package model

import (
	"time"

	"github.com/google/uuid"
)

// SalesOrder maps sales.sales_order_header. SalesOrderNumber and TotalDue
// are computed by the database and never accepted from clients.
type SalesOrder struct {
	SalesOrderID           int        `json:"salesOrderId" db:"sales_order_id"`
	OrderDate              time.Time  `json:"orderDate" db:"order_date"`
	DueDate                time.Time  `json:"dueDate" db:"due_date"`
	ShipDate               *time.Time `json:"shipDate" db:"ship_date"`
	Status                 int16      `json:"status" db:"status"`
	OnlineOrderFlag        bool       `json:"onlineOrderFlag" db:"online_order_flag"`
	SalesOrderNumber       *string    `json:"salesOrderNumber" db:"sales_order_number"`
	PurchaseOrderNumber    *string    `json:"purchaseOrderNumber" db:"purchase_order_number"`
	AccountNumber          *string    `json:"accountNumber" db:"account_number"`
	CustomerID             int        `json:"customerId" db:"customer_id"`
	SalesPersonID          *int       `json:"salesPersonId" db:"sales_person_id"`
	TerritoryID            *int       `json:"territoryId" db:"territory_id"`
	BillToAddressID        int        `json:"billToAddressId" db:"bill_to_address_id"`
	ShipToAddressID        int        `json:"shipToAddressId" db:"ship_to_address_id"`
	ShipMethodID           int        `json:"shipMethodId" db:"ship_method_id"`
	SubTotal               float64    `json:"subTotal" db:"sub_total"`
	TaxAmt                 float64    `json:"taxAmt" db:"tax_amt"`
	Freight                float64    `json:"freight" db:"freight"`
	TotalDue               float64    `json:"totalDue" db:"total_due"`
	Comment                *string    `json:"comment" db:"comment"`
	CreditCardApprovalCode *string    `json:"creditCardApprovalCode" db:"credit_card_approval_code"`
	RowGUID                uuid.UUID  `json:"rowguid" db:"rowguid"`
	ModifiedDate           time.Time  `json:"modifiedDate" db:"modified_date"`
}

// OrderSortFields maps client sort names to sales order columns.
var OrderSortFields = map[string]string{
	"salesorderid":     "sales_order_id",
	"salesordernumber": "sales_order_number",
	"orderdate":        "order_date",
	"duedate":          "due_date",
	"customerid":       "customer_id",
	"totaldue":         "total_due",
	"status":           "status",
}

const OrderDefaultSort = "orderdate"
