package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// base is embedded by every repository. It routes queries to the transaction
// carried by ctx when there is one.
type base struct {
	pool *pgxpool.Pool
}

func (b base) q(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return b.pool
}

// TxManager implements storage.TxManager on a pgx pool.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

var _ storage.TxManager = (*TxManager)(nil)

// WithinTx begins a transaction, or joins the one already in ctx.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		log.Printf("TxManager: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after commit

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("TxManager: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing changes: %w", err)
	}
	return nil
}

// mapError converts pgx errors into storage sentinel errors.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			log.Printf("%s: unique violation on %s", op, pgErr.ConstraintName)
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, storage.ErrConflict)
		case "23503": // foreign_key_violation
			log.Printf("%s: foreign key violation on %s", op, pgErr.ConstraintName)
			if strings.Contains(pgErr.Message, "update or delete") {
				return fmt.Errorf("%s: %w", op, storage.ErrInUse)
			}
			return fmt.Errorf("%s: invalid reference %s: %w", op, pgErr.ConstraintName, storage.ErrConflict)
		case "23514": // check_violation
			return fmt.Errorf("%s: check %s: %w", op, pgErr.ConstraintName, storage.ErrConflict)
		}
	}
	log.Printf("%s: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}

// requireRow turns a zero-row command into ErrNotFound.
func requireRow(tag pgconn.CommandTag, err error, op string) error {
	if err != nil {
		return mapError(err, op)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// where accumulates AND-ed conditions with automatically numbered placeholders.
type where struct {
	conditions []string
	args       []any
}

// add appends a condition; every "?" in clause is replaced by the next placeholder for arg.
func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(w.args))))
}

// raw appends a condition without arguments.
func (w *where) raw(clause string) {
	w.conditions = append(w.conditions, clause)
}

func (w *where) String() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

// buildListQuery constructs a paginated query from a SELECT/FROM prefix and the filters.
func buildListQuery(selectFrom string, w *where, orderBy string, page pagination.PageRequest) (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectFrom)
	queryBuilder.WriteString(w.String())
	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(orderBy)

	args := append([]any{}, w.args...)
	args = append(args, page.Limit())
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, page.Offset())
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return queryBuilder.String(), args
}

// count runs SELECT COUNT(*) over from with the filters of w.
func count(ctx context.Context, db Querier, from string, w *where) (int, error) {
	var n int
	err := db.QueryRow(ctx, "SELECT COUNT(*) "+from+w.String(), w.args...).Scan(&n)
	return n, err
}

// listPage runs a paginated query and its matching count.
func listPage[T any](ctx context.Context, db Querier, columns, from string, w *where, orderBy string, page pagination.PageRequest, op string) ([]T, int, error) {
	total, err := count(ctx, db, from, w)
	if err != nil {
		return nil, 0, mapError(err, op)
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	query, args := buildListQuery("SELECT "+columns+" "+from, w, orderBy, page)
	items, err := collect[T](ctx, db, op, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// collect scans every row into T by column name.
func collect[T any](ctx context.Context, db Querier, op, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, mapError(err, op)
	}
	if items == nil {
		items = []T{} // Return empty slice, not nil
	}
	return items, nil
}

// one scans a single row into T by column name.
func one[T any](ctx context.Context, db Querier, op, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, mapError(err, op)
	}
	return item, nil
}

// exists runs a SELECT EXISTS query.
func exists(ctx context.Context, db Querier, op, query string, args ...any) (bool, error) {
	var ok bool
	if err := db.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, mapError(err, op)
	}
	return ok, nil
}

// likePattern escapes LIKE wildcards in s and wraps it for a contains match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func prefixPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s) + "%"
}
