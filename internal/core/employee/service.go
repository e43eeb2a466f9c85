package employee

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	msgAdded     = "Employee added successfully"
	msgUpdated   = "Employee updated successfully"
	msgDeleted   = "Employee deleted successfully"
	msgRetrieved = "Employees retrieved successfully"
	msgFound     = "Employee found"
)

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	AddRecord(ctx context.Context, fields Fields) Result[int64]
	UpdateRecord(ctx context.Context, id int64, fields Fields) Result[int64]
	DeleteRecord(ctx context.Context, id int64) Result[int64]
	GetAllRecords(ctx context.Context) Result[[]*Employee]
	GetRecordByID(ctx context.Context, id int64) Result[*Employee]
}

// Service は検証と永続化をまとめ、結果を Result で返します。
// 想定外のストレージ障害もここで捕捉し、呼び出し元へは伝播させません。
type Service struct {
	repo   Repository
	tx     TransactionManager
	logger *zap.Logger
}

var _ UseCase = (*Service)(nil)

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager, logger *zap.Logger) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, tx: tx, logger: logger.Named("employee")}
}

// AddRecord は入力を検証し、新しい社員を登録します。
func (s *Service) AddRecord(ctx context.Context, fields Fields) Result[int64] {
	if err := ValidateRecord(fields); err != nil {
		s.logger.Debug("add rejected", zap.Error(err))
		return Fail[int64](err.Error())
	}

	var id int64
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		created, err := s.repo.Insert(txCtx, newEmployee(0, fields))
		if err != nil {
			return err
		}
		id = created
		return nil
	}); err != nil {
		s.logger.Error("add failed", zap.Error(err))
		return Fail[int64](fmt.Sprintf("Error adding employee: %v", err))
	}

	s.logger.Info("employee added", zap.Int64("id", id))
	return Succeed(msgAdded, id)
}

// UpdateRecord は入力を検証し、既存社員の全項目を上書きします。
func (s *Service) UpdateRecord(ctx context.Context, id int64, fields Fields) Result[int64] {
	if err := ValidateRecord(fields); err != nil {
		s.logger.Debug("update rejected", zap.Int64("id", id), zap.Error(err))
		return Fail[int64](err.Error())
	}

	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, newEmployee(id, fields))
	})
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		s.logger.Debug("update target missing", zap.Int64("id", id))
		return Fail[int64](fmt.Sprintf("Failed to update employee with ID %d", id))
	case err != nil:
		s.logger.Error("update failed", zap.Int64("id", id), zap.Error(err))
		return Fail[int64](fmt.Sprintf("Error updating employee: %v", err))
	}

	s.logger.Info("employee updated", zap.Int64("id", id))
	return Succeed(msgUpdated, id)
}

// DeleteRecord は社員を削除します。
func (s *Service) DeleteRecord(ctx context.Context, id int64) Result[int64] {
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Remove(txCtx, id)
	})
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		s.logger.Debug("delete target missing", zap.Int64("id", id))
		return Fail[int64](fmt.Sprintf("Failed to delete employee with ID %d", id))
	case err != nil:
		s.logger.Error("delete failed", zap.Int64("id", id), zap.Error(err))
		return Fail[int64](fmt.Sprintf("Error deleting employee: %v", err))
	}

	s.logger.Info("employee deleted", zap.Int64("id", id))
	return Succeed(msgDeleted, id)
}

// GetAllRecords は全社員を登録順に返します。失敗時も空スライスを返します。
func (s *Service) GetAllRecords(ctx context.Context) Result[[]*Employee] {
	employees, err := s.fetchAll(ctx)
	if err != nil {
		s.logger.Error("list failed", zap.Error(err))
		return Result[[]*Employee]{
			Message: fmt.Sprintf("Error retrieving employees: %v", err),
			Payload: []*Employee{},
		}
	}
	if employees == nil {
		employees = []*Employee{}
	}
	return Succeed(msgRetrieved, employees)
}

// GetRecordByID は全件を走査し、ID が一致した最初の社員を返します。
func (s *Service) GetRecordByID(ctx context.Context, id int64) Result[*Employee] {
	employees, err := s.fetchAll(ctx)
	if err != nil {
		s.logger.Error("lookup failed", zap.Int64("id", id), zap.Error(err))
		return Fail[*Employee](fmt.Sprintf("Error retrieving employee: %v", err))
	}

	for _, emp := range employees {
		if emp != nil && emp.ID == id {
			return Succeed(msgFound, emp)
		}
	}
	return Fail[*Employee](fmt.Sprintf("Employee with ID %d not found", id))
}

func (s *Service) fetchAll(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FetchAll(txCtx)
		if err != nil {
			return err
		}
		employees = found
		return nil
	}); err != nil {
		return nil, err
	}
	return employees, nil
}
