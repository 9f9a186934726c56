package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventureworks/enterprise-api/internal/model"
	"github.com/adventureworks/enterprise-api/pkg/apperror"
	"github.com/adventureworks/enterprise-api/pkg/paginate"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newEmployeeService(repo *fakeEmployeeRepo) *EmployeeService {
	s := NewEmployeeService(repo, testLogger())
	s.now = func() time.Time { return testNow }
	return s
}

func validEmployee() *model.Employee {
	return &model.Employee{
		NationalIDNumber: "112233445",
		LoginID:          "adventure-works\\terri0",
		JobTitle:         "Design Engineer",
		BirthDate:        time.Date(1990, 1, 10, 0, 0, 0, 0, time.UTC),
		MaritalStatus:    "M",
		Gender:           "F",
		HireDate:         time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateAcceptsValidEmployee(t *testing.T) {
	s := newEmployeeService(&fakeEmployeeRepo{})
	assert.Empty(t, s.Validate(validEmployee()))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	s := newEmployeeService(&fakeEmployeeRepo{})

	e := validEmployee()
	e.MaritalStatus = "X"
	e.Gender = "Q"
	e.NationalIDNumber = "1234567890123456"
	e.HireDate = testNow.AddDate(0, 0, 1)
	e.BirthDate = testNow.AddDate(-17, 0, 0)

	violations := s.Validate(e)
	assert.Len(t, violations, 5)
}

func TestValidateFieldLengths(t *testing.T) {
	s := newEmployeeService(&fakeEmployeeRepo{})

	long := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'x'
		}
		return string(b)
	}

	e := validEmployee()
	e.LoginID = long(257)
	e.JobTitle = long(51)
	assert.Len(t, s.Validate(e), 2)

	e = validEmployee()
	e.LoginID = long(256)
	e.JobTitle = long(50)
	e.NationalIDNumber = long(15)
	assert.Empty(t, s.Validate(e))
}

func TestValidateExactlyEighteenIsAccepted(t *testing.T) {
	s := newEmployeeService(&fakeEmployeeRepo{})
	e := validEmployee()
	e.BirthDate = testNow.AddDate(-18, 0, 0)
	assert.Empty(t, s.Validate(e))
}

func TestCreateRejectsInvalidBeforeTouchingStorage(t *testing.T) {
	repo := &fakeEmployeeRepo{
		HasDuplicateFn: func(ctx context.Context, _, _ string) (bool, error) {
			t.Fatal("duplicate check must not run for invalid input")
			return false, nil
		},
	}
	s := newEmployeeService(repo)

	e := validEmployee()
	e.Gender = "?"
	_, err := s.Create(context.Background(), e)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
	assert.NotEmpty(t, apperror.ViolationsOf(err))
}

func TestCreateRejectsDuplicateAsConflict(t *testing.T) {
	created := false
	repo := &fakeEmployeeRepo{
		HasDuplicateFn: func(ctx context.Context, _, _ string) (bool, error) { return true, nil },
		CreateFn: func(ctx context.Context, e *model.Employee) error {
			created = true
			return nil
		},
	}
	s := newEmployeeService(repo)

	_, err := s.Create(context.Background(), validEmployee())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
	assert.False(t, created, "no record may be persisted on conflict")
}

func TestCreateSetsActiveFlag(t *testing.T) {
	repo := &fakeEmployeeRepo{
		HasDuplicateFn: func(ctx context.Context, _, _ string) (bool, error) { return false, nil },
		CreateFn: func(ctx context.Context, e *model.Employee) error {
			e.EmployeeID = 300
			return nil
		},
	}
	s := newEmployeeService(repo)

	e := validEmployee()
	e.CurrentFlag = false
	created, err := s.Create(context.Background(), e)
	require.NoError(t, err)
	assert.True(t, created.CurrentFlag)
	assert.Equal(t, 300, created.EmployeeID)
}

func TestCreateWrapsStorageFault(t *testing.T) {
	repo := &fakeEmployeeRepo{
		HasDuplicateFn: func(ctx context.Context, _, _ string) (bool, error) { return false, nil },
		CreateFn: func(ctx context.Context, e *model.Employee) error {
			return errors.New("tx aborted")
		},
	}
	s := newEmployeeService(repo)

	_, err := s.Create(context.Background(), validEmployee())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
}

func TestUpdateMissingEmployeeIsNotFound(t *testing.T) {
	repo := &fakeEmployeeRepo{
		ExistsActiveFn: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	s := newEmployeeService(repo)

	e := validEmployee()
	e.EmployeeID = 999
	_, err := s.Update(context.Background(), e)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestUpdateDistinguishesConcurrencyFromNotFound(t *testing.T) {
	// The record exists at the pre-check, the write hits zero rows and the
	// recheck shows it gone. That is a concurrent removal, not a 404.
	calls := 0
	repo := &fakeEmployeeRepo{
		ExistsActiveFn: func(ctx context.Context, id int) (bool, error) {
			calls++
			return calls == 1, nil
		},
		UpdateFn: func(ctx context.Context, e *model.Employee) (int64, error) { return 0, nil },
	}
	s := newEmployeeService(repo)

	e := validEmployee()
	e.EmployeeID = 7
	_, err := s.Update(context.Background(), e)
	assert.Equal(t, apperror.CodeConcurrency, apperror.CodeOf(err))
}

func TestDeleteIsSoft(t *testing.T) {
	var deactivated int
	repo := &fakeEmployeeRepo{
		ExistsActiveFn: func(ctx context.Context, id int) (bool, error) { return true, nil },
		SoftDeleteFn: func(ctx context.Context, id int) (int64, error) {
			deactivated = id
			return 1, nil
		},
	}
	s := newEmployeeService(repo)

	require.NoError(t, s.Delete(context.Background(), 55))
	assert.Equal(t, 55, deactivated)
}

func TestDeleteInactiveEmployeeIsNotFound(t *testing.T) {
	repo := &fakeEmployeeRepo{
		ExistsActiveFn: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	s := newEmployeeService(repo)

	err := s.Delete(context.Background(), 55)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestListPagedBuildsResultMetadata(t *testing.T) {
	repo := &fakeEmployeeRepo{
		ListPagedFn: func(ctx context.Context, req paginate.Request) ([]model.Employee, int, error) {
			rows := make([]model.Employee, 5)
			return rows, 20, nil
		},
	}
	s := newEmployeeService(repo)

	result, err := s.ListPaged(context.Background(), paginate.Request{Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 20, result.TotalCount)
	assert.Equal(t, 4, result.TotalPages)
	assert.True(t, result.HasNextPage)
	assert.True(t, result.HasPreviousPage)
}
