package postgres

import (
	"context"
	"fmt"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
)

type inventoryRepository struct {
	*BaseRepository
}

func NewInventoryRepository(base BaseRepository) repository.InventoryRepository {
	return &inventoryRepository{BaseRepository: &base}
}

func (r *inventoryRepository) List(ctx context.Context) ([]model.ProductInventory, error) {
	query := `SELECT * FROM production.product_inventory ORDER BY product_id, location_id`
	rows := []model.ProductInventory{}
	if err := r.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return rows, nil
}

func (r *inventoryRepository) ListByProduct(ctx context.Context, productID int) ([]model.ProductInventory, error) {
	query := `SELECT * FROM production.product_inventory WHERE product_id = $1 ORDER BY location_id`
	rows := []model.ProductInventory{}
	if err := r.SelectContext(ctx, &rows, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list inventory for product %d: %w", productID, err)
	}
	return rows, nil
}

func (r *inventoryRepository) UpdateQuantity(ctx context.Context, productID int, locationID, quantity int16) (int64, error) {
	query := `
		UPDATE production.product_inventory
		SET quantity = $1, modified_date = now()
		WHERE product_id = $2 AND location_id = $3
	`
	res, err := r.ExecContext(ctx, query, quantity, productID, locationID)
	if err != nil {
		return 0, fmt.Errorf("failed to update inventory quantity: %w", err)
	}
	return res.RowsAffected()
}
