package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"gorm.io/gorm"
)

// employeeRow は employees テーブルの 1 行です。id 以外はすべて TEXT で保持します。
type employeeRow struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name    string `gorm:"column:name;type:text"`
	Age     string `gorm:"column:age;type:text"`
	Job     string `gorm:"column:job;type:text"`
	Email   string `gorm:"column:email;type:text"`
	Gender  string `gorm:"column:gender;type:text"`
	Phone   string `gorm:"column:phone;type:text"`
	Address string `gorm:"column:address;type:text"`
}

func (employeeRow) TableName() string {
	return "employees"
}

// EmployeeRepository は SQLite を利用した社員永続化の実装です。
type EmployeeRepository struct {
	db *gorm.DB
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Migrate は employees テーブルが無ければ作成します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&employeeRow{}); err != nil {
		return fmt.Errorf("sqlite: migrate employees: %w", err)
	}
	return nil
}

// Insert は社員を新規作成し、採番された ID を返します。
func (r *EmployeeRepository) Insert(ctx context.Context, e *employee.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("sqlite: insert employee: nil record")
	}
	if e.Persisted() {
		return 0, employee.ErrAlreadyPersisted
	}

	row := toRow(e)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("sqlite: insert employee: %w", err)
	}
	return row.ID, nil
}

// FetchAll は全社員を ID 昇順 (登録順) で取得します。
func (r *EmployeeRepository) FetchAll(ctx context.Context) ([]*employee.Employee, error) {
	var rows []employeeRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("sqlite: fetch employees: %w", err)
	}

	employees := make([]*employee.Employee, 0, len(rows))
	for i := range rows {
		employees = append(employees, fromRow(rows[i]))
	}
	return employees, nil
}

// Update は社員の 7 項目を上書きします。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if e == nil || !e.Persisted() {
		return employee.ErrInvalidID
	}

	// struct で Updates するとゼロ値が無視されるため map で全項目を渡す
	res := r.db.WithContext(ctx).
		Model(&employeeRow{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"name":    e.Name,
			"age":     e.Age,
			"job":     e.Job,
			"email":   e.Email,
			"gender":  e.Gender,
			"phone":   e.Phone,
			"address": e.Address,
		})
	if err := translateError(res.Error); err != nil {
		return fmt.Errorf("sqlite: update employee %d: %w", e.ID, err)
	}
	if res.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Remove は社員を削除します。
func (r *EmployeeRepository) Remove(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&employeeRow{})
	if err := translateError(res.Error); err != nil {
		return fmt.Errorf("sqlite: delete employee %d: %w", id, err)
	}
	if res.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.ErrEmployeeNotFound
	}
	return err
}

func toRow(e *employee.Employee) employeeRow {
	return employeeRow{
		ID:      e.ID,
		Name:    e.Name,
		Age:     e.Age,
		Job:     e.Job,
		Email:   e.Email,
		Gender:  e.Gender,
		Phone:   e.Phone,
		Address: e.Address,
	}
}

func fromRow(row employeeRow) *employee.Employee {
	return &employee.Employee{
		ID:      row.ID,
		Name:    row.Name,
		Age:     row.Age,
		Job:     row.Job,
		Email:   row.Email,
		Gender:  row.Gender,
		Phone:   row.Phone,
		Address: row.Address,
	}
}
