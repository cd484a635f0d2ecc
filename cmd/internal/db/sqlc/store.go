package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/lib/pq"
)

// TxQuerier - Querier внутри открытой транзакции. Точки сохранения позволяют
// откатить одну неудачную запись и продолжить работу в той же транзакции:
// без них Postgres переводит всю транзакцию в состояние aborted.
type TxQuerier interface {
	Querier
	Savepoint(ctx context.Context, name string) error
	RollbackToSavepoint(ctx context.Context, name string) error
	ReleaseSavepoint(ctx context.Context, name string) error
}

//go:generate mockgen -package mockdb -destination ../mock/store.go github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc Store,TxQuerier

// Store предоставляет все запросы плюс выполнение функций в транзакции.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(TxQuerier) error) error
}

// SQLStore - реализация Store поверх database/sql.
type SQLStore struct {
	*Queries
	db *sql.DB
}

// NewStore создает новый Store
func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

// ExecTx выполняет fn в одной транзакции.
// Любая ошибка из fn откатывает транзакцию целиком.
func (store *SQLStore) ExecTx(ctx context.Context, fn func(TxQuerier) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	// После Commit вызов Rollback ничего не делает, а при панике освобождает соединение.
	defer tx.Rollback()

	q := New(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

var savepointName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func checkSavepointName(name string) error {
	if !savepointName.MatchString(name) {
		return fmt.Errorf("недопустимое имя точки сохранения: %q", name)
	}
	return nil
}

func (q *Queries) Savepoint(ctx context.Context, name string) error {
	if err := checkSavepointName(name); err != nil {
		return err
	}
	_, err := q.db.ExecContext(ctx, "SAVEPOINT "+name)
	return err
}

func (q *Queries) RollbackToSavepoint(ctx context.Context, name string) error {
	if err := checkSavepointName(name); err != nil {
		return err
	}
	_, err := q.db.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name)
	return err
}

func (q *Queries) ReleaseSavepoint(ctx context.Context, name string) error {
	if err := checkSavepointName(name); err != nil {
		return err
	}
	_, err := q.db.ExecContext(ctx, "RELEASE SAVEPOINT "+name)
	return err
}

// IsUniqueViolation сообщает, что запись нарушила уникальный индекс (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

var _ TxQuerier = (*Queries)(nil)
