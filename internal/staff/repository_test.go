package staff

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

func setupStaffMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func staffColumns() []string {
	return []string{"id", "gym_id", "name", "phone", "email", "role", "salary", "created_at", "updated_at"}
}

func TestCreateStaff_StampsGymID(t *testing.T) {
	repo, mock, close := setupStaffMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO staff (gym_id, name, phone, email, role, salary) VALUES ($1, $2, $3, $4, $5, $6)")).
		WithArgs(3, "Ravi", "555-0102", "ravi@example.com", "trainer", 1200.0).
		WillReturnRows(sqlmock.NewRows(staffColumns()).AddRow(1, 3, "Ravi", "555-0102", "ravi@example.com", "trainer", 1200.0, now, now))

	s, err := repo.Create(context.Background(), tenant.NewScope(3), StaffRequest{
		Name: "Ravi", Phone: "555-0102", Email: "ravi@example.com", Role: "trainer", Salary: 1200,
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.GymID)
}

func TestGetStaff_CrossTenantIsNotFound(t *testing.T) {
	repo, mock, close := setupStaffMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM staff WHERE id = $1 AND gym_id = $2")).
		WithArgs(1, 9).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), tenant.NewScope(9), 1)
	require.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestUpdateStaff_NotFound(t *testing.T) {
	repo, mock, close := setupStaffMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE staff SET name = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), tenant.NewScope(3), 99, StaffRequest{Name: "Ravi"})
	require.True(t, errors.Is(err, sql.ErrNoRows))
}
