package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func noTx(ctx context.Context) *sqlx.Tx { return nil }

func seedUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	user, err := NewUserWriteRepository(db).Save(context.Background(), username, username, username+"@example.com", "hash")
	assert.NoError(t, err)
	return user.UserID
}

func TestOperationWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := seedUser(t, db, "alice")
	repo := NewOperationWriteRepository(db, noTx)
	ctx := context.Background()

	op, err := repo.Save(ctx, userID, "soma", "[10.5,20.3,5.2]", 36)
	assert.NoError(t, err)
	assert.NotNil(t, op)
	assert.NotEqual(t, uuid.Nil, op.OperationID)
	assert.Equal(t, userID, op.UserID)
	assert.Equal(t, "soma", op.TipoOperacao)
	assert.Equal(t, "[10.5,20.3,5.2]", op.Parametros)
	assert.Equal(t, float64(36), op.Resultado)
	assert.False(t, op.DataCriacao.IsZero())
}

func TestOperationWriteRepository_SaveInsideTx(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := seedUser(t, db, "bob")
	ctx := context.Background()

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)

	repo := NewOperationWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	op, err := repo.Save(ctx, userID, "subtracao", "[10,3,2]", 5)
	assert.NoError(t, err)
	assert.NotNil(t, op)

	assert.NoError(t, tx.Rollback())

	// Rolled back, nothing visible outside the transaction
	var count int64
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM operacoes WHERE user_id=$1", userID))
	assert.Equal(t, int64(0), count)
}

func TestOperationWriteRepository_DeleteByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "carol")
	other := seedUser(t, db, "dan")
	repo := NewOperationWriteRepository(db, noTx)
	ctx := context.Background()

	op, err := repo.Save(ctx, owner, "divisao", "[10,4]", 2.5)
	assert.NoError(t, err)

	// Another user cannot delete it
	err = repo.DeleteByID(ctx, other, op.OperationID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// The owner can
	assert.NoError(t, repo.DeleteByID(ctx, owner, op.OperationID))

	// Second delete reports missing
	err = repo.DeleteByID(ctx, owner, op.OperationID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOperationWriteRepository_DeleteAllByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "erin")
	other := seedUser(t, db, "frank")
	repo := NewOperationWriteRepository(db, noTx)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, owner, "soma", "[1,2]", 3)
		assert.NoError(t, err)
	}
	_, err := repo.Save(ctx, other, "soma", "[1,2]", 3)
	assert.NoError(t, err)

	count, err := repo.DeleteAllByUser(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Other user's history untouched
	var remaining int64
	assert.NoError(t, db.Get(&remaining, "SELECT COUNT(*) FROM operacoes WHERE user_id=$1", other))
	assert.Equal(t, int64(1), remaining)

	// Clearing an empty history succeeds with zero
	count, err = repo.DeleteAllByUser(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestOperationReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "grace")
	other := seedUser(t, db, "henry")
	writeRepo := NewOperationWriteRepository(db, noTx)
	readRepo := NewOperationReadRepository(db)
	ctx := context.Background()

	op, err := writeRepo.Save(ctx, owner, "multiplicacao", "[2,3,4]", 24)
	assert.NoError(t, err)

	found, err := readRepo.GetByID(ctx, owner, op.OperationID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, op.OperationID, found.OperationID)
	assert.Equal(t, "multiplicacao", found.TipoOperacao)

	// Ownership is part of the lookup
	_, err = readRepo.GetByID(ctx, other, op.OperationID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = readRepo.GetByID(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOperationReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "iris")
	readRepo := NewOperationReadRepository(db)
	ctx := context.Background()

	// Insert with explicit timestamps so the expected order is unambiguous
	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		_, err := db.Exec(
			`INSERT INTO operacoes (operation_id, user_id, tipo_operacao, parametros, resultado, data_criacao)
			 VALUES ($1, $2, 'soma', '[1,2]', 3, now() + make_interval(secs => $3))`,
			ids[i], owner, i,
		)
		assert.NoError(t, err)
	}

	ops, err := readRepo.ListByUser(ctx, owner, 3, 0)
	assert.NoError(t, err)
	assert.Len(t, ops, 3)

	// Newest first
	assert.Equal(t, ids[4], ops[0].OperationID)
	assert.Equal(t, ids[3], ops[1].OperationID)

	rest, err := readRepo.ListByUser(ctx, owner, 3, 3)
	assert.NoError(t, err)
	assert.Len(t, rest, 2)

	empty, err := readRepo.ListByUser(ctx, owner, 3, 100)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOperationReadRepository_CountByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "julia")
	writeRepo := NewOperationWriteRepository(db, noTx)
	readRepo := NewOperationReadRepository(db)
	ctx := context.Background()

	count, err := readRepo.CountByUser(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for i := 0; i < 4; i++ {
		_, err := writeRepo.Save(ctx, owner, "soma", "[1,2]", 3)
		assert.NoError(t, err)
	}

	count, err = readRepo.CountByUser(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
