package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/models"
)

// OperationWriteRepository handles operation write queries.
// Writes run against the request transaction when one is present in the
// context, so a create either fully persists or not at all.
type OperationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOperationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OperationWriteRepository {
	return &OperationWriteRepository{db: db, txGetter: txGetter}
}

func (r *OperationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new operation record owned by userID and returns it.
func (r *OperationWriteRepository) Save(ctx context.Context, userID uuid.UUID, tipoOperacao, parametros string, resultado float64) (*models.OperationDB, error) {
	query := `
		INSERT INTO operacoes (user_id, tipo_operacao, parametros, resultado)
		VALUES ($1, $2, $3, $4)
		RETURNING operation_id, user_id, tipo_operacao, parametros, resultado, data_criacao
	`
	args := []any{userID, tipoOperacao, parametros, resultado}

	var op models.OperationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &op, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &op, nil
}

// DeleteByID deletes the record if it exists and is owned by userID.
// Returns sql.ErrNoRows otherwise, so an absent record and a record owned
// by another user are indistinguishable to the caller.
func (r *OperationWriteRepository) DeleteByID(ctx context.Context, userID, operationID uuid.UUID) error {
	query := `
		DELETE FROM operacoes
		WHERE operation_id = $1 AND user_id = $2
	`
	args := []any{operationID, userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteAllByUser deletes every record owned by userID and returns the
// number of deleted rows. Zero is a valid result.
func (r *OperationWriteRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM operacoes
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// OperationReadRepository handles operation read queries.
type OperationReadRepository struct {
	db *sqlx.DB
}

func NewOperationReadRepository(db *sqlx.DB) *OperationReadRepository {
	return &OperationReadRepository{db: db}
}

// GetByID returns the record if it exists and is owned by userID,
// sql.ErrNoRows otherwise.
func (r *OperationReadRepository) GetByID(ctx context.Context, userID, operationID uuid.UUID) (*models.OperationDB, error) {
	const query = `
		SELECT operation_id, user_id, tipo_operacao, parametros, resultado, data_criacao
		FROM operacoes
		WHERE operation_id = $1 AND user_id = $2
	`

	var op models.OperationDB
	err := r.db.GetContext(ctx, &op, query, operationID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{operationID, userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &op, nil
}

// ListByUser returns a page of records owned by userID, newest first.
func (r *OperationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.OperationDB, error) {
	const query = `
		SELECT operation_id, user_id, tipo_operacao, parametros, resultado, data_criacao
		FROM operacoes
		WHERE user_id = $1
		ORDER BY data_criacao DESC, operation_id DESC
		LIMIT $2 OFFSET $3
	`

	ops := []models.OperationDB{}
	err := r.db.SelectContext(ctx, &ops, query, userID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(ops),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return ops, nil
}

// CountByUser returns the total number of records owned by userID.
func (r *OperationReadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM operacoes
		WHERE user_id = $1
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return count, nil
}
