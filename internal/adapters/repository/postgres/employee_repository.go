package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-roster/internal/platform/db/postgres"
)

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Insert は社員を新規作成し、採番された ID を返します。
func (r *EmployeeRepository) Insert(ctx context.Context, e *employee.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("postgres: insert employee: nil record")
	}
	if e.Persisted() {
		return 0, employee.ErrAlreadyPersisted
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (name, age, job, email, gender, phone, address)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `,
		e.Name,
		e.Age,
		e.Job,
		e.Email,
		e.Gender,
		e.Phone,
		e.Address,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("postgres: insert employee: %w", err)
	}
	return id, nil
}

// FetchAll は全社員を ID 昇順 (登録順) で取得します。
func (r *EmployeeRepository) FetchAll(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, name, age, job, email, gender, phone, address
          FROM employees
         ORDER BY id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: fetch employees: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: fetch employees: %w", err)
	}

	return employees, nil
}

// Update は社員の 7 項目を上書きします。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if e == nil || !e.Persisted() {
		return employee.ErrInvalidID
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE employees
           SET name = $1,
               age = $2,
               job = $3,
               email = $4,
               gender = $5,
               phone = $6,
               address = $7
         WHERE id = $8
    `,
		e.Name,
		e.Age,
		e.Job,
		e.Email,
		e.Gender,
		e.Phone,
		e.Address,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("postgres: update employee %d: %w", e.ID, translateEmployeePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Remove は社員を削除します。
func (r *EmployeeRepository) Remove(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete employee %d: %w", id, translateEmployeePgError(err))
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	if err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Age,
		&emp.Job,
		&emp.Email,
		&emp.Gender,
		&emp.Phone,
		&emp.Address,
	); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return &emp, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	return err
}
