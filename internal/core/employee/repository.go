package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	// Insert は未採番のレコードを保存し、採番された ID を返します。
	Insert(ctx context.Context, employee *Employee) (int64, error)
	// FetchAll は全レコードを登録順に返します。
	FetchAll(ctx context.Context) ([]*Employee, error)
	// Update は 7 項目すべてを上書きします。該当行がなければ ErrEmployeeNotFound を返します。
	Update(ctx context.Context, employee *Employee) error
	// Remove は該当行を削除します。該当行がなければ ErrEmployeeNotFound を返します。
	Remove(ctx context.Context, id int64) error
}
