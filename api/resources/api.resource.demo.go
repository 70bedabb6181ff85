// FilePath: api/resources/api.resource.demo.go
package resources

import (
	"net/http"

	"github.com/AlexDanDobrin/Plantech/internal/demo"
	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/monitoring"
	nuts "github.com/vaudience/go-nuts"
)

// DemoHandlers exposes the one-shot pump demonstration latch. The mobile
// client arms it; the device consumes it on its next poll.
type DemoHandlers struct {
	latch      *demo.Latch
	monitoring *monitoring.Service
}

// @Summary Arm the demo latch
// @Description Idempotent; a never-consumed latch stays armed
// @Tags demo
// @Produce json
// @Success 200 {object} map[string]string
// @Router /requestDEMO [get]
func (h *DemoHandlers) RequestDemo(w http.ResponseWriter, r *http.Request) {
	h.latch.Arm()
	nuts.L.Infof("[DemoHandlers] Demo latch armed")
	h.monitoring.RecordEvent("demo.armed")

	respondWithMessage(w, http.StatusOK, "DEMO to be started!")
}

// @Summary Consume the demo latch
// @Description Single-shot: the first poll after arming fires, later polls get 400
// @Tags demo
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /startDEMO [get]
func (h *DemoHandlers) StartDemo(w http.ResponseWriter, r *http.Request) {
	if !h.latch.Consume() {
		respondWithError(w, errors.NewValidationError("DEMO not requested.", nil))
		return
	}

	nuts.L.Infof("[DemoHandlers] Demo latch fired")
	h.monitoring.RecordEvent("demo.fired")

	respondWithMessage(w, http.StatusOK, "START DEMO!")
}
