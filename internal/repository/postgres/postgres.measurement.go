// FilePath: internal/repository/postgres/postgres.measurement.go
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

type MeasurementRepo struct {
	PostgresBaseRepo
}

func NewMeasurementRepository(db database.DB) *MeasurementRepo {
	return &MeasurementRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
}

// Insert appends a reading. The sensor existence check and the insert are a
// single statement, so an append racing a cascade delete either lands before
// the delete or reports not-found; it can never leave an orphaned row.
func (r *MeasurementRepo) Insert(ctx context.Context, sensorID int64, value float64, timestamp time.Time) (*models.Measurement, error) {
	query := `
		INSERT INTO measurements (sensor_id, value, timestamp)
		SELECT $1, $2, $3
		WHERE EXISTS (SELECT 1 FROM sensors WHERE id = $1)
		RETURNING id`

	measurement := &models.Measurement{
		SensorID:  sensorID,
		Value:     value,
		Timestamp: timestamp,
	}

	err := r.db.GetDB().GetContext(ctx, &measurement.ID, query, sensorID, value, timestamp)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, errors.NewDatabaseError("failed to insert measurement", err)
	}
	return measurement, nil
}

func (r *MeasurementRepo) Latest(ctx context.Context, sensorID int64) (*models.Measurement, error) {
	measurement := &models.Measurement{}
	query := `
		SELECT id, sensor_id, value, timestamp FROM measurements
		WHERE sensor_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT 1`

	err := r.db.GetDB().GetContext(ctx, measurement, query, sensorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, errors.NewDatabaseError("failed to get latest measurement", err)
	}
	return measurement, nil
}

func (r *MeasurementRepo) ListBySensor(ctx context.Context, sensorID int64) ([]*models.Measurement, error) {
	measurements := []*models.Measurement{}
	query := `
		SELECT id, sensor_id, value, timestamp FROM measurements
		WHERE sensor_id = $1
		ORDER BY timestamp ASC, id ASC`

	err := r.db.GetDB().SelectContext(ctx, &measurements, query, sensorID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list measurements", err)
	}
	return measurements, nil
}

func (r *MeasurementRepo) DeleteBySensorTx(ctx context.Context, sensorID int64, tx database.Transaction) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM measurements WHERE sensor_id = $1`, sensorID)
	if err != nil {
		return errors.NewDatabaseError("failed to delete measurements", err)
	}
	return nil
}
