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

type employeeRepository struct {
	*BaseRepository
}

func NewEmployeeRepository(base BaseRepository) repository.EmployeeRepository {
	return &employeeRepository{BaseRepository: &base}
}

// employeeSearchFilter matches the fixed searchable field list: login id,
// job title, national id number and the stringified identifier. An empty
// term matches everything.
const employeeSearchFilter = ` AND ($1 = ''
		OR login_id ILIKE '%' || $1 || '%'
		OR job_title ILIKE '%' || $1 || '%'
		OR national_id_number ILIKE '%' || $1 || '%'
		OR business_entity_id::text LIKE '%' || $1 || '%')`

func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT * FROM humanresources.employee WHERE current_flag ORDER BY business_entity_id`
	employees := []model.Employee{}
	if err := r.SelectContext(ctx, &employees, query); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) ListPaged(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
	req = req.Normalized()
	search := strings.TrimSpace(req.Search)

	base := `FROM humanresources.employee WHERE current_flag` + employeeSearchFilter

	var total int
	if err := r.GetContext(ctx, &total, `SELECT COUNT(*) `+base, search); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	orderBy := paginate.Column(req.SortBy, model.EmployeeSortFields, model.EmployeeDefaultSort)
	query := fmt.Sprintf(`SELECT * %s ORDER BY %s %s LIMIT $2 OFFSET $3`, base, orderBy, req.Direction())

	employees := []model.Employee{}
	if err := r.SelectContext(ctx, &employees, query, search, req.PageSize, req.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, total, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.GetContext(ctx, &count, `SELECT COUNT(*) FROM humanresources.employee WHERE current_flag`)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// Get resolves active employees only; a soft-deleted record reads as absent.
func (r *employeeRepository) Get(ctx context.Context, id int) (*model.Employee, error) {
	query := `SELECT * FROM humanresources.employee WHERE business_entity_id = $1 AND current_flag`
	var employee model.Employee
	if err := r.GetContext(ctx, &employee, query, id); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) ExistsActive(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM humanresources.employee WHERE business_entity_id = $1 AND current_flag)`
	if err := r.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}

// HasDuplicate matches both active and inactive employees so a soft-deleted
// record still blocks reuse of its unique keys.
func (r *employeeRepository) HasDuplicate(ctx context.Context, nationalID, loginID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM humanresources.employee WHERE national_id_number = $1 OR login_id = $2)`
	if err := r.GetContext(ctx, &exists, query, nationalID, loginID); err != nil {
		return false, fmt.Errorf("failed to check for duplicate employee: %w", err)
	}
	return exists, nil
}

// Create inserts the business entity row, the minimum person profile row and
// the employee row as one atomic unit. All three share the identifier
// generated by the business entity insert; any failure rolls everything back.
func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var id int
		err := tx.GetContext(ctx, &id, `
			INSERT INTO person.business_entity (rowguid, modified_date)
			VALUES ($1, now())
			RETURNING business_entity_id
		`, uuid.New())
		if err != nil {
			return fmt.Errorf("failed to insert business entity: %w", err)
		}

		// The person row only needs a displayable name; the schema requires
		// one even though employees are managed through their login id.
		firstName := strings.TrimSpace(e.LoginID)
		if firstName == "" {
			firstName = "User"
		}
		if len(firstName) > 50 {
			firstName = firstName[:50]
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO person.person (
				business_entity_id, person_type, name_style, first_name, last_name,
				email_promotion, rowguid, modified_date
			) VALUES ($1, 'EM', false, $2, $3, 0, $4, now())
		`, id, firstName, "Employee", uuid.New())
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}

		e.RowGUID = uuid.New()
		e.ModifiedDate = time.Now()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO humanresources.employee (
				business_entity_id, national_id_number, login_id, job_title, birth_date,
				marital_status, gender, hire_date, salaried_flag, vacation_hours,
				sick_leave_hours, current_flag, rowguid, modified_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`,
			id,
			e.NationalIDNumber,
			e.LoginID,
			e.JobTitle,
			e.BirthDate,
			e.MaritalStatus,
			e.Gender,
			e.HireDate,
			e.SalariedFlag,
			e.VacationHours,
			e.SickLeaveHours,
			e.CurrentFlag,
			e.RowGUID,
			e.ModifiedDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert employee: %w", err)
		}

		e.EmployeeID = id
		return nil
	})
}

func (r *employeeRepository) Update(ctx context.Context, e *model.Employee) (int64, error) {
	query := `
		UPDATE humanresources.employee
		SET national_id_number = $1, login_id = $2, job_title = $3, birth_date = $4,
			marital_status = $5, gender = $6, hire_date = $7, salaried_flag = $8,
			vacation_hours = $9, sick_leave_hours = $10, current_flag = $11,
			modified_date = now()
		WHERE business_entity_id = $12
	`
	res, err := r.ExecContext(ctx, query,
		e.NationalIDNumber,
		e.LoginID,
		e.JobTitle,
		e.BirthDate,
		e.MaritalStatus,
		e.Gender,
		e.HireDate,
		e.SalariedFlag,
		e.VacationHours,
		e.SickLeaveHours,
		e.CurrentFlag,
		e.EmployeeID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update employee: %w", err)
	}
	return res.RowsAffected()
}

// SoftDelete clears the active flag; the rows stay in place.
func (r *employeeRepository) SoftDelete(ctx context.Context, id int) (int64, error) {
	res, err := r.ExecContext(ctx, `
		UPDATE humanresources.employee SET current_flag = false, modified_date = now()
		WHERE business_entity_id = $1
	`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return res.RowsAffected()
}
