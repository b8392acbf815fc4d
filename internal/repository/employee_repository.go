package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trainops/batch_planner/internal/model"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `user_id, first_name, middle_name, last_name, role, status, email, picture_path`

// GetByUserID получает сотрудника по идентификатору
func (r *EmployeeRepository) GetByUserID(ctx context.Context, userID string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`

	e, err := scanEmployee(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by user id: %w", err)
	}
	return e, nil
}

// GetAll получает весь справочник сотрудников
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY user_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var e model.Employee
	err := row.Scan(
		&e.UserID,
		&e.FirstName,
		&e.MiddleName,
		&e.LastName,
		&e.Role,
		&e.Status,
		&e.Email,
		&e.PicturePath,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
