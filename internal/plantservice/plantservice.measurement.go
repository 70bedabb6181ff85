package plantservice

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/cache"
	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/models"
	"github.com/AlexDanDobrin/Plantech/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// RecordMeasurement appends a device reading, stamping the time server-side.
// The sensor must exist at insert time; the repository enforces this
// atomically against concurrent cascade deletes.
func (s *PlantService) RecordMeasurement(ctx context.Context, sensorID int64, value float64) (*models.Measurement, error) {
	measurement, err := s.Measurements.Insert(ctx, sensorID, value, time.Now().UTC())
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("sensor does not exist in records", err)
		}
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.LatestKey(sensorID)); err != nil {
		nuts.L.Warnf("[MeasurementService] Cache invalidation failed for sensor %d: %v", sensorID, err)
	}

	s.monitoring.RecordMeasurement()
	return measurement, nil
}

// LatestMeasurement returns the most recent reading for a sensor. An unknown
// sensor and a sensor with an empty history are reported the same way; a
// caller that needs the distinction checks sensor existence first.
func (s *PlantService) LatestMeasurement(ctx context.Context, sensorID int64) (*models.Measurement, error) {
	key := cache.LatestKey(sensorID)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		measurement := &models.Measurement{}
		if unmarshalErr := json.Unmarshal([]byte(raw), measurement); unmarshalErr == nil {
			return measurement, nil
		}
	} else if err != nil {
		nuts.L.Warnf("[MeasurementService] Cache read failed for sensor %d: %v", sensorID, err)
	}

	measurement, err := s.Measurements.Latest(ctx, sensorID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("invalid sensor id or no measurements for given sensor", err)
		}
		return nil, err
	}

	if raw, marshalErr := json.Marshal(measurement); marshalErr == nil {
		if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
			nuts.L.Warnf("[MeasurementService] Cache write failed for sensor %d: %v", sensorID, err)
		}
	}
	return measurement, nil
}

// ListMeasurements returns every reading of an existing sensor in timestamp
// order. A sensor with no readings yields an empty list.
func (s *PlantService) ListMeasurements(ctx context.Context, sensorID int64) ([]*models.Measurement, error) {
	if _, err := s.GetSensor(ctx, sensorID); err != nil {
		return nil, err
	}
	return s.Measurements.ListBySensor(ctx, sensorID)
}
