package postgres

import (
	"context"
	"fmt"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
)

type reportRepository struct {
	*BaseRepository
}

func NewReportRepository(base BaseRepository) repository.ReportRepository {
	return &reportRepository{BaseRepository: &base}
}

// LongestTenuredEmployees ranks active employees by time served in their
// current department.
func (r *reportRepository) LongestTenuredEmployees(ctx context.Context) ([]model.LongestTenuredEmployee, error) {
	query := `
		SELECT e.business_entity_id,
			e.login_id,
			e.job_title,
			d.name AS department_name,
			edh.start_date AS department_start_date,
			EXTRACT(YEAR FROM age(now(), edh.start_date))::int AS years_in_department
		FROM humanresources.employee e
		JOIN humanresources.employee_department_history edh
			ON edh.business_entity_id = e.business_entity_id AND edh.end_date IS NULL
		JOIN humanresources.department d ON d.department_id = edh.department_id
		WHERE e.current_flag
		ORDER BY edh.start_date
		LIMIT 20
	`
	rows := []model.LongestTenuredEmployee{}
	if err := r.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query employee tenure: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) TopSellingProducts(ctx context.Context, limit int) ([]model.TopSellingProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT p.product_id,
			p.name AS product_name,
			p.product_number,
			SUM(sod.order_qty)::int AS total_quantity_sold,
			SUM(sod.line_total)::numeric AS total_revenue,
			COUNT(DISTINCT sod.sales_order_id)::int AS number_of_orders
		FROM sales.sales_order_detail sod
		JOIN production.product p ON p.product_id = sod.product_id
		GROUP BY p.product_id, p.name, p.product_number
		ORDER BY total_quantity_sold DESC
		LIMIT $1
	`
	rows := []model.TopSellingProduct{}
	if err := r.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query top sellers: %w", err)
	}
	return rows, nil
}

// LowInventoryProducts lists sellable products whose summed stock sits at or
// below the reorder point, flagging the ones under half of it as critical.
func (r *reportRepository) LowInventoryProducts(ctx context.Context) ([]model.LowInventoryProduct, error) {
	query := `
		SELECT p.product_id,
			p.name AS product_name,
			p.product_number,
			p.safety_stock_level::int AS safety_stock_level,
			COALESCE(SUM(pi.quantity), 0)::int AS current_inventory,
			p.reorder_point::int AS reorder_point,
			COALESCE(string_agg(DISTINCT l.name, ', '), 'Unassigned') AS product_location,
			CASE
				WHEN COALESCE(SUM(pi.quantity), 0) = 0 THEN 'Out of Stock'
				WHEN COALESCE(SUM(pi.quantity), 0) < p.reorder_point / 2 THEN 'Critical'
				ELSE 'Low'
			END AS inventory_status
		FROM production.product p
		LEFT JOIN production.product_inventory pi ON pi.product_id = p.product_id
		LEFT JOIN production.location l ON l.location_id = pi.location_id
		WHERE p.sell_end_date IS NULL
		GROUP BY p.product_id, p.name, p.product_number, p.safety_stock_level, p.reorder_point
		HAVING COALESCE(SUM(pi.quantity), 0) <= p.reorder_point
		ORDER BY current_inventory
	`
	rows := []model.LowInventoryProduct{}
	if err := r.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query low inventory: %w", err)
	}
	return rows, nil
}
