package plantservice

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/cache"
	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/models"
	"github.com/AlexDanDobrin/Plantech/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// AddSensor registers a sensor under an existing user. The id comes from the
// control client and must not collide with any sensor of any user.
func (s *PlantService) AddSensor(ctx context.Context, username string, sensorID int64, limit int) (*models.Sensor, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("user not found", err)
		}
		return nil, err
	}

	now := time.Now().UTC()
	sensor := &models.Sensor{
		ID:        sensorID,
		Mode:      models.DefaultWorkMode,
		Limit:     limit,
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Sensors.Create(ctx, sensor); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.NewConflictError("sensor already exists", err)
		}
		return nil, err
	}

	nuts.L.Infof("[SensorService] Created sensor %d for user %s", sensorID, username)
	s.monitoring.RecordEvent("sensor.created")
	return sensor, nil
}

// RemoveSensor deletes a sensor and cascades to its measurements.
func (s *PlantService) RemoveSensor(ctx context.Context, sensorID int64) error {
	if err := s.Cleanup.DeleteSensor(ctx, sensorID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("sensor not found", err)
		}
		return err
	}

	s.invalidateSensor(ctx, sensorID)
	return nil
}

// GetSensor returns the full sensor record.
func (s *PlantService) GetSensor(ctx context.Context, sensorID int64) (*models.Sensor, error) {
	sensor, err := s.Sensors.Get(ctx, sensorID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("sensor not found", err)
		}
		return nil, err
	}
	return sensor, nil
}

// ListSensors returns all sensors owned by username. A user with no sensors
// gets an empty list, not an error.
func (s *PlantService) ListSensors(ctx context.Context, username string) ([]*models.Sensor, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("user not found", err)
		}
		return nil, err
	}

	return s.Sensors.ListByUser(ctx, user.ID)
}

// UpdateWorkMode sets a sensor's operating mode. Re-applying the same mode is
// a no-op on state.
func (s *PlantService) UpdateWorkMode(ctx context.Context, sensorID int64, mode string) error {
	if mode == "" || len(mode) > models.MaxWorkModeLength {
		return errors.NewValidationError("mode is required and must be at most 10 characters", nil)
	}

	if err := s.Sensors.UpdateMode(ctx, sensorID, mode); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("sensor not found", err)
		}
		return err
	}

	nuts.L.Infof("[SensorService] Updated work mode of sensor %d to %s", sensorID, mode)
	s.invalidateSensor(ctx, sensorID)
	return nil
}

// UpdateLimit sets a sensor's irrigation threshold.
func (s *PlantService) UpdateLimit(ctx context.Context, sensorID int64, limit int) error {
	if err := s.Sensors.UpdateLimit(ctx, sensorID, limit); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("sensor not found", err)
		}
		return err
	}

	nuts.L.Infof("[SensorService] Updated limit of sensor %d to %d", sensorID, limit)
	s.invalidateSensor(ctx, sensorID)
	return nil
}

// WorkMode is the narrow read used by the device poll loop; it is served
// from cache when possible.
func (s *PlantService) WorkMode(ctx context.Context, sensorID int64) (string, error) {
	key := cache.ModeKey(sensorID)
	if mode, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return mode, nil
	} else if err != nil {
		nuts.L.Warnf("[SensorService] Cache read failed for sensor %d: %v", sensorID, err)
	}

	sensor, err := s.GetSensor(ctx, sensorID)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, key, sensor.Mode, s.cacheTTL); err != nil {
		nuts.L.Warnf("[SensorService] Cache write failed for sensor %d: %v", sensorID, err)
	}
	return sensor.Mode, nil
}

// Threshold is the narrow threshold read used by the device poll loop.
func (s *PlantService) Threshold(ctx context.Context, sensorID int64) (int, error) {
	key := cache.ThresholdKey(sensorID)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		if limit, convErr := strconv.Atoi(raw); convErr == nil {
			return limit, nil
		}
	} else if err != nil {
		nuts.L.Warnf("[SensorService] Cache read failed for sensor %d: %v", sensorID, err)
	}

	sensor, err := s.GetSensor(ctx, sensorID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, key, strconv.Itoa(sensor.Limit), s.cacheTTL); err != nil {
		nuts.L.Warnf("[SensorService] Cache write failed for sensor %d: %v", sensorID, err)
	}
	return sensor.Limit, nil
}

// invalidateSensor drops every cached value derived from the sensor. Stale
// reads bounded by the TTL are acceptable only when invalidation fails.
func (s *PlantService) invalidateSensor(ctx context.Context, sensorID int64) {
	if err := s.cache.Delete(ctx, cache.SensorKeys(sensorID)...); err != nil {
		nuts.L.Warnf("[SensorService] Cache invalidation failed for sensor %d: %v", sensorID, err)
	}
}
