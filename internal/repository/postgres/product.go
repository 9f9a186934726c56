package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

type productRepository struct {
	*BaseRepository
}

func NewProductRepository(base BaseRepository) repository.ProductRepository {
	return &productRepository{BaseRepository: &base}
}

const productSearchFilter = ` AND ($1 = ''
		OR name ILIKE '%' || $1 || '%'
		OR product_number ILIKE '%' || $1 || '%'
		OR color ILIKE '%' || $1 || '%'
		OR product_id::text LIKE '%' || $1 || '%')`

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT * FROM production.product ORDER BY product_id`
	products := []model.Product{}
	if err := r.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *productRepository) ListPaged(ctx context.Context, req paginate.Request) ([]model.Product, int, error) {
	req = req.Normalized()
	search := strings.TrimSpace(req.Search)

	base := `FROM production.product WHERE true` + productSearchFilter

	var total int
	if err := r.GetContext(ctx, &total, `SELECT COUNT(*) `+base, search); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	orderBy := paginate.Column(req.SortBy, model.ProductSortFields, model.ProductDefaultSort)
	query := fmt.Sprintf(`SELECT * %s ORDER BY %s %s LIMIT $2 OFFSET $3`, base, orderBy, req.Direction())

	products := []model.Product{}
	if err := r.SelectContext(ctx, &products, query, search, req.PageSize, req.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (r *productRepository) Get(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	if err := r.GetContext(ctx, &product, `SELECT * FROM production.product WHERE product_id = $1`, id); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM production.product WHERE product_id = $1)`
	if err := r.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return exists, nil
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	p.RowGUID = uuid.New()
	p.ModifiedDate = time.Now()
	query := `
		INSERT INTO production.product (
			name, product_number, make_flag, finished_goods_flag, color,
			safety_stock_level, reorder_point, standard_cost, list_price, size,
			size_unit_measure_code, weight_unit_measure_code, weight,
			days_to_manufacture, product_line, class, style,
			product_subcategory_id, product_model_id, sell_start_date,
			sell_end_date, discontinued_date, rowguid, modified_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING product_id
	`
	err := r.GetContext(ctx, &p.ProductID, query,
		p.Name,
		p.ProductNumber,
		p.MakeFlag,
		p.FinishedGoodsFlag,
		p.Color,
		p.SafetyStockLevel,
		p.ReorderPoint,
		p.StandardCost,
		p.ListPrice,
		p.Size,
		p.SizeUnitMeasureCode,
		p.WeightUnitMeasureCode,
		p.Weight,
		p.DaysToManufacture,
		p.ProductLine,
		p.Class,
		p.Style,
		p.ProductSubcategoryID,
		p.ProductModelID,
		p.SellStartDate,
		p.SellEndDate,
		p.DiscontinuedDate,
		p.RowGUID,
		p.ModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) (int64, error) {
	query := `
		UPDATE production.product
		SET name = $1, product_number = $2, make_flag = $3, finished_goods_flag = $4,
			color = $5, safety_stock_level = $6, reorder_point = $7,
			standard_cost = $8, list_price = $9, size = $10,
			size_unit_measure_code = $11, weight_unit_measure_code = $12,
			weight = $13, days_to_manufacture = $14, product_line = $15,
			class = $16, style = $17, product_subcategory_id = $18,
			product_model_id = $19, sell_start_date = $20, sell_end_date = $21,
			discontinued_date = $22, modified_date = now()
		WHERE product_id = $23
	`
	res, err := r.ExecContext(ctx, query,
		p.Name,
		p.ProductNumber,
		p.MakeFlag,
		p.FinishedGoodsFlag,
		p.Color,
		p.SafetyStockLevel,
		p.ReorderPoint,
		p.StandardCost,
		p.ListPrice,
		p.Size,
		p.SizeUnitMeasureCode,
		p.WeightUnitMeasureCode,
		p.Weight,
		p.DaysToManufacture,
		p.ProductLine,
		p.Class,
		p.Style,
		p.ProductSubcategoryID,
		p.ProductModelID,
		p.SellStartDate,
		p.SellEndDate,
		p.DiscontinuedDate,
		p.ProductID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update product: %w", err)
	}
	return res.RowsAffected()
}

// HasAssemblyDependency reports whether the product appears in any bill of
// materials, as a component or as an assembly. Such products cannot be
// removed without breaking the assembly tree.
func (r *productRepository) HasAssemblyDependency(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM production.bill_of_materials
			WHERE component_id = $1 OR product_assembly_id = $1
		)
	`
	if err := r.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check assembly dependencies: %w", err)
	}
	return exists, nil
}

func (r *productRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.ExecContext(ctx, `DELETE FROM production.product WHERE product_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}
	return res.RowsAffected()
}
