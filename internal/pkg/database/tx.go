package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	apperror "vollmed/internal/errors"
)

// Executor é o subconjunto de operações comum a *sqlx.DB e *sqlx.Tx usado pelos repositórios.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type txKey struct{}

// Transactor demarca a unidade de trabalho de cada operação de escrita.
type Transactor struct {
	db *sqlx.DB
}

// NewTransactor cria um Transactor sobre o pool de conexões.
func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction abre uma transação, executa fn com a transação anexada ao contexto
// e faz commit. Qualquer erro (ou panic) em fn provoca rollback completo.
// Chamadas aninhadas reutilizam a transação já presente no contexto.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, nil, fn)
}

// WithinReadOnlyTransaction executa fn numa transação somente leitura em REPEATABLE READ,
// para que consultas encadeadas (e.g., COUNT e SELECT da listagem) vejam o mesmo snapshot.
func (t *Transactor) WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (t *Transactor) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, opts)
	if err != nil {
		return apperror.NewDBError("falha ao iniciar transação", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return apperror.NewDBError("falha ao confirmar transação", err)
	}
	return nil
}

// ExecutorFrom devolve a transação presente no contexto ou, na ausência dela, o próprio pool.
func ExecutorFrom(ctx context.Context, db *sqlx.DB) Executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
