package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/barengan/internal/pkg/database"
	"github.com/piresc/barengan/internal/pkg/models"
)

// MatchingRepo implements the matching repository interface on Postgres and Redis
type MatchingRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMatchingRepository creates a new matching repository
func NewMatchingRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MatchingRepo {
	return &MatchingRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// storeError classifies a database error: missing rows become ErrNotFound,
// everything else is a transient dependency failure
func storeError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return models.Transient(fmt.Errorf("failed to %s: %w", op, err))
}

// requireRows turns a zero-row conditional update into ErrInvalidTransition
func requireRows(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return storeError("read rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s lost a concurrent update", models.ErrInvalidTransition, op)
	}
	return nil
}

func rowsAffected(result sql.Result) (int64, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, storeError("read rows affected", err)
	}
	return rows, nil
}

func (r *MatchingRepo) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeError("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit transaction", err)
	}
	return nil
}

func driverStatusStrings(statuses []models.DriverPairingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func riderStatusStrings(statuses []models.RiderPairingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
