// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/AlexDanDobrin/Plantech/internal/demo"
	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/monitoring"
	"github.com/AlexDanDobrin/Plantech/internal/plantservice"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Auth         *AuthHandlers
	Sensors      *SensorHandlers
	Measurements *MeasurementHandlers
	Demo         *DemoHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *plantservice.PlantService, latch *demo.Latch, mon *monitoring.Service) *Resources {
	return &Resources{
		Auth:         &AuthHandlers{plantservice: svc},
		Sensors:      &SensorHandlers{plantservice: svc},
		Measurements: &MeasurementHandlers{plantservice: svc},
		Demo:         &DemoHandlers{latch: latch, monitoring: mon},
	}
}

// Index answers the root path; the mobile client uses it as a reachability
// probe.
func (r *Resources) Index(w http.ResponseWriter, req *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello"})
}

// Helper functions

// formDecoder maps application/x-www-form-urlencoded bodies onto typed
// request structs. Both the mobile client and the device firmware send form
// encoding, never JSON.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func decodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

func sensorIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondWithServiceError maps a service error onto the wire, keeping the
// structured type/code when the service produced one.
func respondWithServiceError(w http.ResponseWriter, err error, requestID string) {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError("unexpected error", err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithMessage(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}
