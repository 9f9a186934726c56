package service

import (
	"context"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
	"github.com/adventureworks/enterprise-api/pkg/apperror"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

// InventoryService serves inventory rows. Paged listing materializes the
// full set and pages it in process, exercising the same pagination semantics
// the SQL-backed lists use.
type InventoryService struct {
	repo repository.InventoryRepository
	log  *logger.Logger
}

func NewInventoryService(repo repository.InventoryRepository, log *logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, log: log.WithComponent("inventory_service")}
}

func (s *InventoryService) List(ctx context.Context) ([]model.ProductInventory, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list inventory", err)
	}
	return rows, nil
}

func (s *InventoryService) ListPaged(ctx context.Context, req paginate.Request) (paginate.Result[model.ProductInventory], error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return paginate.Result[model.ProductInventory]{}, apperror.NewInternal("failed to list inventory", err)
	}
	return paginate.Paginate(rows, req, model.InventoryPageDefinition()), nil
}

func (s *InventoryService) ListByProduct(ctx context.Context, productID int) ([]model.ProductInventory, error) {
	if productID <= 0 {
		return nil, apperror.NewValidation("Product ID must be a positive integer.")
	}
	rows, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperror.NewInternal("failed to list inventory for product", err)
	}
	return rows, nil
}

func (s *InventoryService) UpdateQuantity(ctx context.Context, productID int, locationID, quantity int16) error {
	if quantity < 0 {
		return apperror.NewValidation("Quantity cannot be negative.")
	}

	affected, err := s.repo.UpdateQuantity(ctx, productID, locationID, quantity)
	if err != nil {
		return apperror.NewInternal("failed to update inventory quantity", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("inventory record")
	}
	return nil
}
