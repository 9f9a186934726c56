package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
	"github.com/adventureworks/enterprise-api/pkg/apperror"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

// ProductService owns product rules, including the assembly dependency
// check that guards hard deletes.
type ProductService struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

func NewProductService(repo repository.ProductRepository, log *logger.Logger) *ProductService {
	return &ProductService{repo: repo, log: log.WithComponent("product_service")}
}

func (s *ProductService) validate(p *model.Product) []string {
	var violations []string
	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, "Product name is required.")
	}
	if strings.TrimSpace(p.ProductNumber) == "" {
		violations = append(violations, "Product number is required.")
	}
	if p.ListPrice < 0 {
		violations = append(violations, "List price cannot be negative.")
	}
	if p.StandardCost < 0 {
		violations = append(violations, "Standard cost cannot be negative.")
	}
	if p.SellEndDate != nil && p.SellEndDate.Before(p.SellStartDate) {
		violations = append(violations, "Sell end date cannot precede sell start date.")
	}
	return violations
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list products", err)
	}
	return products, nil
}

func (s *ProductService) ListPaged(ctx context.Context, req paginate.Request) (paginate.Result[model.Product], error) {
	req = req.Normalized()
	products, total, err := s.repo.ListPaged(ctx, req)
	if err != nil {
		return paginate.Result[model.Product]{}, apperror.NewInternal("failed to list products", err)
	}
	return paginate.NewResult(products, total, req), nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("product")
		}
		return nil, apperror.NewInternal("failed to fetch product", err)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if violations := s.validate(p); len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperror.NewInternal("failed to create product", err)
	}
	s.log.Info(fmt.Sprintf("created product %d", p.ProductID))
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	if violations := s.validate(p); len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}

	exists, err := s.repo.Exists(ctx, p.ProductID)
	if err != nil {
		return nil, apperror.NewInternal("failed to check product existence", err)
	}
	if !exists {
		return nil, apperror.NewNotFound("product")
	}

	affected, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, apperror.NewInternal("failed to update product", err)
	}
	if affected == 0 {
		stillExists, checkErr := s.repo.Exists(ctx, p.ProductID)
		if checkErr == nil && !stillExists {
			return nil, apperror.NewConcurrency("product was removed by another request", nil)
		}
		return nil, apperror.NewNotFound("product")
	}

	return s.Get(ctx, p.ProductID)
}

// Delete removes the product row. A product referenced by any bill of
// materials is protected; the dependency check runs before the existence
// check so a dependent product reports the conflict rather than vanishing.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	dependent, err := s.repo.HasAssemblyDependency(ctx, id)
	if err != nil {
		return apperror.NewInternal("failed to check assembly dependencies", err)
	}
	if dependent {
		return apperror.NewConflict("product is referenced by a bill of materials and cannot be deleted")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.NewInternal("failed to delete product", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("product")
	}

	s.log.Info(fmt.Sprintf("deleted product %d", id))
	return nil
}
