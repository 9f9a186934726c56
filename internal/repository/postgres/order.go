package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

type orderRepository struct {
	*BaseRepository
}

func NewOrderRepository(base BaseRepository) repository.OrderRepository {
	return &orderRepository{BaseRepository: &base}
}

const orderSearchFilter = ` AND ($1 = ''
		OR sales_order_number ILIKE '%' || $1 || '%'
		OR purchase_order_number ILIKE '%' || $1 || '%'
		OR account_number ILIKE '%' || $1 || '%'
		OR sales_order_id::text LIKE '%' || $1 || '%'
		OR customer_id::text LIKE '%' || $1 || '%')`

func (r *orderRepository) List(ctx context.Context) ([]model.SalesOrder, error) {
	query := `SELECT * FROM sales.sales_order_header ORDER BY order_date DESC`
	orders := []model.SalesOrder{}
	if err := r.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListPaged(ctx context.Context, req paginate.Request) ([]model.SalesOrder, int, error) {
	req = req.Normalized()
	search := strings.TrimSpace(req.Search)

	base := `FROM sales.sales_order_header WHERE true` + orderSearchFilter

	var total int
	if err := r.GetContext(ctx, &total, `SELECT COUNT(*) `+base, search); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	orderBy := paginate.Column(req.SortBy, model.OrderSortFields, model.OrderDefaultSort)
	query := fmt.Sprintf(`SELECT * %s ORDER BY %s %s LIMIT $2 OFFSET $3`, base, orderBy, req.Direction())

	orders := []model.SalesOrder{}
	if err := r.SelectContext(ctx, &orders, query, search, req.PageSize, req.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

func (r *orderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.GetContext(ctx, &count, `SELECT COUNT(*) FROM sales.sales_order_header`); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *orderRepository) Get(ctx context.Context, id int) (*model.SalesOrder, error) {
	var order model.SalesOrder
	if err := r.GetContext(ctx, &order, `SELECT * FROM sales.sales_order_header WHERE sales_order_id = $1`, id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM sales.sales_order_header WHERE sales_order_id = $1)`
	if err := r.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return exists, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int) ([]model.SalesOrder, error) {
	query := `SELECT * FROM sales.sales_order_header WHERE customer_id = $1 ORDER BY order_date DESC`
	orders := []model.SalesOrder{}
	if err := r.SelectContext(ctx, &orders, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}

func (r *orderRepository) ListByStatus(ctx context.Context, status int16) ([]model.SalesOrder, error) {
	query := `SELECT * FROM sales.sales_order_header WHERE status = $1 ORDER BY order_date DESC`
	orders := []model.SalesOrder{}
	if err := r.SelectContext(ctx, &orders, query, status); err != nil {
		return nil, fmt.Errorf("failed to list orders with status %d: %w", status, err)
	}
	return orders, nil
}

// Create inserts the order header. Addresses and ship method are resolved to
// the lowest existing identifiers when the caller leaves them unset, so a
// header can be created against a freshly seeded database without knowing its
// reference data. The computed number and total are read back after insert.
func (r *orderRepository) Create(ctx context.Context, o *model.SalesOrder) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if o.BillToAddressID == 0 {
			if err := tx.GetContext(ctx, &o.BillToAddressID, `SELECT MIN(address_id) FROM person.address`); err != nil {
				return fmt.Errorf("failed to resolve default address: %w", err)
			}
		}
		if o.ShipToAddressID == 0 {
			o.ShipToAddressID = o.BillToAddressID
		}
		if o.ShipMethodID == 0 {
			if err := tx.GetContext(ctx, &o.ShipMethodID, `SELECT MIN(ship_method_id) FROM purchasing.ship_method`); err != nil {
				return fmt.Errorf("failed to resolve default ship method: %w", err)
			}
		}

		o.RowGUID = uuid.New()
		o.ModifiedDate = time.Now()

		query := `
			INSERT INTO sales.sales_order_header (
				order_date, due_date, ship_date, status, online_order_flag,
				purchase_order_number, account_number, customer_id,
				sales_person_id, territory_id, bill_to_address_id,
				ship_to_address_id, ship_method_id, sub_total, tax_amt, freight,
				comment, credit_card_approval_code, rowguid, modified_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
				$14, $15, $16, $17, $18, $19, $20)
			RETURNING sales_order_id
		`
		err := tx.GetContext(ctx, &o.SalesOrderID, query,
			o.OrderDate,
			o.DueDate,
			o.ShipDate,
			o.Status,
			o.OnlineOrderFlag,
			o.PurchaseOrderNumber,
			o.AccountNumber,
			o.CustomerID,
			o.SalesPersonID,
			o.TerritoryID,
			o.BillToAddressID,
			o.ShipToAddressID,
			o.ShipMethodID,
			o.SubTotal,
			o.TaxAmt,
			o.Freight,
			o.Comment,
			o.CreditCardApprovalCode,
			o.RowGUID,
			o.ModifiedDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		// Pick up the generated order number and total.
		reread := `SELECT sales_order_number, total_due FROM sales.sales_order_header WHERE sales_order_id = $1`
		row := struct {
			SalesOrderNumber *string `db:"sales_order_number"`
			TotalDue         float64 `db:"total_due"`
		}{}
		if err := tx.GetContext(ctx, &row, reread, o.SalesOrderID); err != nil {
			return fmt.Errorf("failed to reread order: %w", err)
		}
		o.SalesOrderNumber = row.SalesOrderNumber
		o.TotalDue = row.TotalDue
		return nil
	})
}

// Update writes the mutable header columns only. Computed columns and the
// creation-time keys stay untouched.
func (r *orderRepository) Update(ctx context.Context, o *model.SalesOrder) (int64, error) {
	query := `
		UPDATE sales.sales_order_header
		SET order_date = $1, due_date = $2, ship_date = $3, status = $4,
			online_order_flag = $5, purchase_order_number = $6,
			account_number = $7, customer_id = $8, sub_total = $9,
			tax_amt = $10, freight = $11, comment = $12, modified_date = now()
		WHERE sales_order_id = $13
	`
	res, err := r.ExecContext(ctx, query,
		o.OrderDate,
		o.DueDate,
		o.ShipDate,
		o.Status,
		o.OnlineOrderFlag,
		o.PurchaseOrderNumber,
		o.AccountNumber,
		o.CustomerID,
		o.SubTotal,
		o.TaxAmt,
		o.Freight,
		o.Comment,
		o.SalesOrderID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update order: %w", err)
	}
	return res.RowsAffected()
}

func (r *orderRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.ExecContext(ctx, `DELETE FROM sales.sales_order_header WHERE sales_order_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}
	return res.RowsAffected()
}
