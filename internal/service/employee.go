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

var (
	validMaritalStatus = map[string]bool{"S": true, "M": true, "D": true, "W": true}
	validGender        = map[string]bool{"M": true, "F": true}
)

// EmployeeService owns employee domain rules: validation, duplicate checks
// and the soft-delete lifecycle.
type EmployeeService struct {
	repo repository.EmployeeRepository
	log  *logger.Logger

	// now is swappable in tests so date rules stay deterministic.
	now func() time.Time
}

func NewEmployeeService(repo repository.EmployeeRepository, log *logger.Logger) *EmployeeService {
	return &EmployeeService{
		repo: repo,
		log:  log.WithComponent("employee_service"),
		now:  time.Now,
	}
}

// Validate checks every domain rule and collects all violations so the
// caller sees the full list at once.
func (s *EmployeeService) Validate(e *model.Employee) []string {
	var violations []string
	today := s.now()

	if !validMaritalStatus[e.MaritalStatus] {
		violations = append(violations, "Marital status must be S (Single), M (Married), D (Divorced) or W (Widowed).")
	}
	if !validGender[e.Gender] {
		violations = append(violations, "Gender must be M or F.")
	}
	if len(e.NationalIDNumber) > 15 {
		violations = append(violations, "National ID number must be 15 characters or fewer.")
	}
	if len(e.LoginID) > 256 {
		violations = append(violations, "Login ID must be 256 characters or fewer.")
	}
	if len(e.JobTitle) > 50 {
		violations = append(violations, "Job title must be 50 characters or fewer.")
	}
	if e.HireDate.After(today) {
		violations = append(violations, "Hire date cannot be in the future.")
	}
	if e.BirthDate.After(today.AddDate(-18, 0, 0)) {
		violations = append(violations, "Employee must be at least 18 years old.")
	}
	return violations
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list employees", err)
	}
	return employees, nil
}

func (s *EmployeeService) ListPaged(ctx context.Context, req paginate.Request) (paginate.Result[model.Employee], error) {
	req = req.Normalized()
	employees, total, err := s.repo.ListPaged(ctx, req)
	if err != nil {
		return paginate.Result[model.Employee]{}, apperror.NewInternal("failed to list employees", err)
	}
	return paginate.NewResult(employees, total, req), nil
}

func (s *EmployeeService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperror.NewInternal("failed to count employees", err)
	}
	return count, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int) (*model.Employee, error) {
	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("employee")
		}
		return nil, apperror.NewInternal("failed to fetch employee", err)
	}
	return employee, nil
}

// Create validates the candidate, rejects duplicate keys and persists the
// record. Validation and the duplicate check both run before any mutating
// statement, so a rejected create leaves no trace.
func (s *EmployeeService) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if violations := s.Validate(e); len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}

	dup, err := s.repo.HasDuplicate(ctx, e.NationalIDNumber, e.LoginID)
	if err != nil {
		return nil, apperror.NewInternal("failed to check for duplicate employee", err)
	}
	if dup {
		return nil, apperror.NewConflict("an employee with the same national ID number or login ID already exists")
	}

	e.CurrentFlag = true
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apperror.NewInternal("failed to create employee", err)
	}

	s.log.Info(fmt.Sprintf("created employee %d", e.EmployeeID))
	return e, nil
}

// Update overwrites the mutable fields of an existing active employee.
// A write that hits zero rows is rechecked against the current state to tell
// a record that never existed from one that vanished mid-flight.
func (s *EmployeeService) Update(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if violations := s.Validate(e); len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}

	active, err := s.repo.ExistsActive(ctx, e.EmployeeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to check employee existence", err)
	}
	if !active {
		return nil, apperror.NewNotFound("employee")
	}

	affected, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, apperror.NewInternal("failed to update employee", err)
	}
	if affected == 0 {
		stillActive, checkErr := s.repo.ExistsActive(ctx, e.EmployeeID)
		if checkErr == nil && !stillActive {
			return nil, apperror.NewConcurrency("employee was modified or removed by another request", nil)
		}
		return nil, apperror.NewNotFound("employee")
	}

	return s.Get(ctx, e.EmployeeID)
}

// Delete deactivates the employee. The rows remain for history and for the
// duplicate check, which still honors a deactivated record's unique keys.
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	active, err := s.repo.ExistsActive(ctx, id)
	if err != nil {
		return apperror.NewInternal("failed to check employee existence", err)
	}
	if !active {
		return apperror.NewNotFound("employee")
	}

	affected, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return apperror.NewInternal("failed to deactivate employee", err)
	}
	if affected == 0 {
		return apperror.NewConcurrency("employee was modified or removed by another request", nil)
	}

	s.log.Info(fmt.Sprintf("deactivated employee %d", id))
	return nil
}
