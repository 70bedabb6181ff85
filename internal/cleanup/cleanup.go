package cleanup

import (
	"context"
	"fmt"

	"github.com/AlexDanDobrin/Plantech/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Service coordinates deletion of hierarchical data. Removing a sensor
// removes every measurement it owns inside the same transaction.
type Service struct {
	sensors      repository.SensorRepository
	measurements repository.MeasurementRepository
	events       *nuts.EventEmitter
}

// New creates a new cleanup Service
func New(sensors repository.SensorRepository, measurements repository.MeasurementRepository) *Service {
	return &Service{
		sensors:      sensors,
		measurements: measurements,
		events:       nuts.NewEventEmitter(),
	}
}

// DeleteSensor deletes a sensor and all of its measurements. Children go
// first, parent second, both inside one transaction, so a concurrent append
// either commits before the cascade or fails its sensor-existence check.
func (s *Service) DeleteSensor(ctx context.Context, sensorID int64) error {
	if _, err := s.sensors.Get(ctx, sensorID); err != nil {
		return err
	}

	tx, err := s.sensors.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Will be ignored if transaction is committed

	if err := s.measurements.DeleteBySensorTx(ctx, sensorID, tx); err != nil {
		return fmt.Errorf("failed to delete measurements: %w", err)
	}

	if err := s.sensors.DeleteTx(ctx, sensorID, tx); err != nil {
		return fmt.Errorf("failed to delete sensor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Emit event after successful deletion
	s.events.Emit("sensor.deleted", sensorID)
	return nil
}

// OnCleanup registers a callback for cleanup events
func (s *Service) OnCleanup(event string, handler func(id int64)) {
	s.events.On(event, "cleanup_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(int64); ok {
				handler(id)
			}
		}
	})
}
