package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/internal/repository"
	"github.com/adventureworks/enterprise-api/pkg/apperror"
	"github.com/adventureworks/enterprise-api/pkg/logger"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

const (
	orderStatusMin = 1
	orderStatusMax = 5
)

// OrderService owns sales order rules: date defaults, status normalization
// and the due-date ordering constraint.
type OrderService struct {
	repo repository.OrderRepository
	log  *logger.Logger
	now  func() time.Time
}

func NewOrderService(repo repository.OrderRepository, log *logger.Logger) *OrderService {
	return &OrderService{
		repo: repo,
		log:  log.WithComponent("order_service"),
		now:  time.Now,
	}
}

func (s *OrderService) List(ctx context.Context) ([]model.SalesOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list orders", err)
	}
	return orders, nil
}

func (s *OrderService) ListPaged(ctx context.Context, req paginate.Request) (paginate.Result[model.SalesOrder], error) {
	req = req.Normalized()
	orders, total, err := s.repo.ListPaged(ctx, req)
	if err != nil {
		return paginate.Result[model.SalesOrder]{}, apperror.NewInternal("failed to list orders", err)
	}
	return paginate.NewResult(orders, total, req), nil
}

func (s *OrderService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperror.NewInternal("failed to count orders", err)
	}
	return count, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*model.SalesOrder, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("sales order")
		}
		return nil, apperror.NewInternal("failed to fetch order", err)
	}
	return order, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID int) ([]model.SalesOrder, error) {
	if customerID <= 0 {
		return nil, apperror.NewValidation("Customer ID must be a positive integer.")
	}
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to list orders by customer", err)
	}
	return orders, nil
}

func (s *OrderService) ListByStatus(ctx context.Context, status int16) ([]model.SalesOrder, error) {
	if status < orderStatusMin || status > orderStatusMax {
		return nil, apperror.NewValidation(fmt.Sprintf("Status must be between %d and %d.", orderStatusMin, orderStatusMax))
	}
	orders, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, apperror.NewInternal("failed to list orders by status", err)
	}
	return orders, nil
}

// Create applies defaults before validation: a zero order date becomes
// today, a zero due date becomes the order date, and an out-of-range status
// resets to the initial in-process state rather than being rejected.
func (s *OrderService) Create(ctx context.Context, o *model.SalesOrder) (*model.SalesOrder, error) {
	if o.OrderDate.IsZero() {
		o.OrderDate = s.now()
	}
	if o.DueDate.IsZero() {
		o.DueDate = o.OrderDate
	}
	if o.Status < orderStatusMin || o.Status > orderStatusMax {
		o.Status = orderStatusMin
	}

	var violations []string
	if o.CustomerID <= 0 {
		violations = append(violations, "Customer ID must be a positive integer.")
	}
	if o.DueDate.Before(o.OrderDate) {
		violations = append(violations, "Due date cannot be earlier than the order date.")
	}
	if o.SubTotal < 0 || o.TaxAmt < 0 || o.Freight < 0 {
		violations = append(violations, "Order amounts cannot be negative.")
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, apperror.NewInternal("failed to create order", err)
	}

	s.log.Info(fmt.Sprintf("created sales order %d", o.SalesOrderID))
	return o, nil
}

func (s *OrderService) Update(ctx context.Context, o *model.SalesOrder) (*model.SalesOrder, error) {
	var violations []string
	if o.CustomerID <= 0 {
		violations = append(violations, "Customer ID must be a positive integer.")
	}
	if o.DueDate.Before(o.OrderDate) {
		violations = append(violations, "Due date cannot be earlier than the order date.")
	}
	if o.Status < orderStatusMin || o.Status > orderStatusMax {
		violations = append(violations, fmt.Sprintf("Status must be between %d and %d.", orderStatusMin, orderStatusMax))
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}

	exists, err := s.repo.Exists(ctx, o.SalesOrderID)
	if err != nil {
		return nil, apperror.NewInternal("failed to check order existence", err)
	}
	if !exists {
		return nil, apperror.NewNotFound("sales order")
	}

	affected, err := s.repo.Update(ctx, o)
	if err != nil {
		return nil, apperror.NewInternal("failed to update order", err)
	}
	if affected == 0 {
		stillExists, checkErr := s.repo.Exists(ctx, o.SalesOrderID)
		if checkErr == nil && !stillExists {
			return nil, apperror.NewConcurrency("sales order was removed by another request", nil)
		}
		return nil, apperror.NewNotFound("sales order")
	}

	return s.Get(ctx, o.SalesOrderID)
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.NewInternal("failed to delete order", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("sales order")
	}
	s.log.Info(fmt.Sprintf("deleted sales order %d", id))
	return nil
}
