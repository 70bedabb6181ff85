// FilePath: api/resources/api.resource.sensors.go
package resources

import (
	"fmt"
	"net/http"

	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/plantservice"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

// SensorHandlers encapsulates the sensor-registry HTTP handlers
type SensorHandlers struct {
	plantservice *plantservice.PlantService
}

type addSensorRequest struct {
	Username string `schema:"username,required"`
	ID       int64  `schema:"id,required"`
	Limit    int    `schema:"limit,required"`
}

type updateModeRequest struct {
	Mode string `schema:"mode,required"`
}

type updateLimitRequest struct {
	Limit int `schema:"limit,required"`
}

// @Summary Add a sensor
// @Description Register a sensor under an existing user; the id is client-assigned
// @Tags sensors
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Owning username"
// @Param id formData int true "Sensor id"
// @Param limit formData int true "Irrigation threshold"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /addSensor [post]
func (h *SensorHandlers) AddSensor(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req addSensorRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if _, err := h.plantservice.AddSensor(r.Context(), req.Username, req.ID, req.Limit); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusCreated, "New sensor successfully created!")
}

// @Summary Remove a sensor
// @Description Delete a sensor and every measurement it owns
// @Tags sensors
// @Produce json
// @Param id path int true "Sensor id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.APIError
// @Router /removeSensor/{id} [delete]
func (h *SensorHandlers) RemoveSensor(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	if err := h.plantservice.RemoveSensor(r.Context(), id); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusOK, "Sensor successfully deleted!")
}

// @Summary Get sensor details
// @Tags sensors
// @Produce json
// @Param id path int true "Sensor id"
// @Success 200 {object} models.Sensor
// @Failure 404 {object} errors.APIError
// @Router /getSensorDetails/{id} [get]
func (h *SensorHandlers) GetSensorDetails(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	sensor, err := h.plantservice.GetSensor(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, sensor)
}

// @Summary List a user's sensors
// @Description A user with zero sensors gets an empty list, not a 404
// @Tags sensors
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.Sensor
// @Failure 404 {object} errors.APIError
// @Router /getSensors/{username} [get]
func (h *SensorHandlers) GetSensors(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	username := mux.Vars(r)["username"]

	sensors, err := h.plantservice.ListSensors(r.Context(), username)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, sensors)
}

// @Summary Update work mode
// @Tags sensors
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Sensor id"
// @Param mode formData string true "Work mode (max 10 chars)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.APIError
// @Router /updateWorkMode/{id} [post]
func (h *SensorHandlers) UpdateWorkMode(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	var req updateModeRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.plantservice.UpdateWorkMode(r.Context(), id, req.Mode); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusOK, fmt.Sprintf("Work mode successfully updated for sensor with id %d", id))
}

// @Summary Update threshold
// @Tags sensors
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Sensor id"
// @Param limit formData int true "Irrigation threshold"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.APIError
// @Router /updateLimit/{id} [post]
func (h *SensorHandlers) UpdateLimit(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	var req updateLimitRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.plantservice.UpdateLimit(r.Context(), id, req.Limit); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusOK, fmt.Sprintf("Limit successfully updated for sensor with id %d", id))
}

// GetWorkMode is polled by the device to decide between automatic and manual
// irrigation.
func (h *SensorHandlers) GetWorkMode(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	mode, err := h.plantservice.WorkMode(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"mode": mode})
}

// GetTreshold is polled by the device; the misspelled path is part of the
// wire contract the firmware hard-codes.
func (h *SensorHandlers) GetTreshold(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := sensorIDFromPath(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor id", err).WithRequestID(requestID))
		return
	}

	limit, err := h.plantservice.Threshold(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"treshold": limit})
}
