// FilePath: internal/models/models.measurement.go
package models

import "time"

// Measurement is a single sensor reading. Rows are append-only: they are
// created by ingestion and removed only when their sensor is deleted.
type Measurement struct {
	ID        int64     `json:"measurementID" db:"id"`
	SensorID  int64     `json:"sensorID" db:"sensor_id"`
	Value     float64   `json:"value" db:"value"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
