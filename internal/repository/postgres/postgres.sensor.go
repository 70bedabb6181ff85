// FilePath: internal/repository/postgres/postgres.sensor.go
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/database"
	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/models"
	"github.com/AlexDanDobrin/Plantech/internal/repository"
)

type SensorRepo struct {
	PostgresBaseRepo
}

func NewSensorRepository(db database.DB) *SensorRepo {
	return &SensorRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
}

func (r *SensorRepo) Create(ctx context.Context, sensor *models.Sensor) error {
	query := `
		INSERT INTO sensors (id, mode, "limit", user_id, created_at, updated_at)
		VALUES (:id, :mode, :limit, :user_id, :created_at, :updated_at)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, sensor)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrNotFound
		}
		return errors.NewDatabaseError("failed to create sensor", err)
	}
	return nil
}

func (r *SensorRepo) Get(ctx context.Context, id int64) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	query := `SELECT id, mode, "limit", user_id, created_at, updated_at FROM sensors WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, sensor, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, errors.NewDatabaseError("failed to get sensor", err)
	}
	return sensor, nil
}

func (r *SensorRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Sensor, error) {
	sensors := []*models.Sensor{}
	query := `SELECT id, mode, "limit", user_id, created_at, updated_at FROM sensors WHERE user_id = $1 ORDER BY id ASC`

	err := r.db.GetDB().SelectContext(ctx, &sensors, query, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list sensors", err)
	}
	return sensors, nil
}

func (r *SensorRepo) UpdateMode(ctx context.Context, id int64, mode string) error {
	query := `UPDATE sensors SET mode = $1, updated_at = $2 WHERE id = $3`
	return r.updateField(ctx, query, mode, id)
}

func (r *SensorRepo) UpdateLimit(ctx context.Context, id int64, limit int) error {
	query := `UPDATE sensors SET "limit" = $1, updated_at = $2 WHERE id = $3`
	return r.updateField(ctx, query, limit, id)
}

// updateField runs a single-column update; the whole read-modify-write is one
// atomic statement, so concurrent updates to the same sensor cannot interleave.
func (r *SensorRepo) updateField(ctx context.Context, query string, value interface{}, id int64) error {
	result, err := r.db.GetDB().ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return errors.NewDatabaseError("failed to update sensor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SensorRepo) DeleteTx(ctx context.Context, id int64, tx database.Transaction) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM sensors WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete sensor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
