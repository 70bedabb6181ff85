// FilePath: api/resources/api.resource.measurements.go
package resources

import (
	"net/http"

	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/plantservice"
	nuts "github.com/vaudience/go-nuts"
)

// MeasurementHandlers encapsulates the telemetry HTTP handlers
type MeasurementHandlers struct {
	plantservice *plantservice.PlantService
}

type newMeasurementRequest struct {
	Value float64 `schema:"value,required"`
}

// @Summary Ingest a measurement
// @Description Append a device reading; the timestamp is set server-side
// @Tags measurements
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Sensor id"
// @Param value formData number true "Measured value"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /newMeasurement/{id} [post]
func (h *MeasurementHandlers) NewMeasurement(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	var req newMeasurementRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if _, err := h.plantservice.RecordMeasurement(r.Context(), id, req.Value); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusCreated, "New measurement successfully added!")
}

// @Summary Latest measurement
// @Tags measurements
// @Produce json
// @Param id path int true "Sensor id"
// @Success 200 {object} models.Measurement
// @Failure 404 {object} errors.APIError
// @Router /lastMeasurement/{id} [get]
func (h *MeasurementHandlers) LastMeasurement(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	measurement, err := h.plantservice.LatestMeasurement(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, measurement)
}

// @Summary All measurements of a sensor
// @Description Readings in timestamp order; an existing sensor with no readings yields an empty list
// @Tags measurements
// @Produce json
// @Param id path int true "Sensor id"
// @Success 200 {array} models.Measurement
// @Failure 404 {object} errors.APIError
// @Router /getMeasurements/{id} [get]
func (h *MeasurementHandlers) GetMeasurements(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	measurements, err := h.plantservice.ListMeasurements(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, measurements)
}
