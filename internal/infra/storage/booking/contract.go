package booking

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов вне транзакции
// Реализуется *sql.DB
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// DB полный набор возможностей, нужный репозиторию
type DB interface {
	DBExecutor
	TxBeginner
}
