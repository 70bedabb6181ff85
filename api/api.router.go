package api

import (
	"net/http"

	"github.com/AlexDanDobrin/Plantech/api/resources"
	"github.com/AlexDanDobrin/Plantech/internal/demo"
	"github.com/AlexDanDobrin/Plantech/internal/monitoring"
	"github.com/AlexDanDobrin/Plantech/internal/plantservice"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

type Router struct {
	router     *mux.Router
	resources  *resources.Resources
	monitoring *monitoring.Service
}

func NewRouter(svc *plantservice.PlantService, latch *demo.Latch, mon *monitoring.Service) *Router {
	r := &Router{
		router:     mux.NewRouter(),
		resources:  resources.NewResources(svc, latch, mon),
		monitoring: mon,
	}

	r.setupRoutes()
	return r
}

// setupRoutes wires the external contract. Paths are flat and unversioned:
// the device firmware and the mobile client hard-code them, including the
// historical /getTreshold spelling.
func (r *Router) setupRoutes() {
	r.router.HandleFunc("/", r.resources.Index).Methods(http.MethodGet)
	r.router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.monitoring.Handler()).Methods(http.MethodGet)

	// Mobile client routes
	r.router.HandleFunc("/register", r.resources.Auth.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.resources.Auth.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/requestDEMO", r.resources.Demo.RequestDemo).Methods(http.MethodGet)
	r.router.HandleFunc("/addSensor", r.resources.Sensors.AddSensor).Methods(http.MethodPost)
	r.router.HandleFunc("/removeSensor/{id}", r.resources.Sensors.RemoveSensor).Methods(http.MethodGet, http.MethodDelete)
	r.router.HandleFunc("/getSensorDetails/{id}", r.resources.Sensors.GetSensorDetails).Methods(http.MethodGet)
	r.router.HandleFunc("/getSensors/{username}", r.resources.Sensors.GetSensors).Methods(http.MethodGet)
	r.router.HandleFunc("/updateWorkMode/{id}", r.resources.Sensors.UpdateWorkMode).Methods(http.MethodPost)
	r.router.HandleFunc("/updateLimit/{id}", r.resources.Sensors.UpdateLimit).Methods(http.MethodPost)
	r.router.HandleFunc("/lastMeasurement/{id}", r.resources.Measurements.LastMeasurement).Methods(http.MethodGet)
	r.router.HandleFunc("/getMeasurements/{id}", r.resources.Measurements.GetMeasurements).Methods(http.MethodGet)

	// Device routes
	r.router.HandleFunc("/startDEMO", r.resources.Demo.StartDemo).Methods(http.MethodGet)
	r.router.HandleFunc("/getWorkMode/{id}", r.resources.Sensors.GetWorkMode).Methods(http.MethodGet)
	r.router.HandleFunc("/getTreshold/{id}", r.resources.Sensors.GetTreshold).Methods(http.MethodGet)
	r.router.HandleFunc("/newMeasurement/{id}", r.resources.Measurements.NewMeasurement).Methods(http.MethodPost)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
