package http

import (
	"net/http"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	billHandler         *handler.BillHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	billHandler *handler.BillHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		billHandler:         billHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialty/{specialty}", r.doctorHandler.GetDoctorsBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/patient/{patientId}", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)
	api.HandleFunc("/appointments/doctor/{doctorId}", r.appointmentHandler.GetAppointmentsByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/appointments/status/{status}", r.appointmentHandler.GetAppointmentsByStatus).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Bills
	api.HandleFunc("/bills", r.billHandler.CreateBill).Methods(http.MethodPost)
	api.HandleFunc("/bills", r.billHandler.GetAllBills).Methods(http.MethodGet)
	api.HandleFunc("/bills/patient/{patientId}", r.billHandler.GetBillsByPatient).Methods(http.MethodGet)
	api.HandleFunc("/bills/status/{status}", r.billHandler.GetBillsByStatus).Methods(http.MethodGet)
	api.HandleFunc("/bills/{id}", r.billHandler.GetBill).Methods(http.MethodGet)
	api.HandleFunc("/bills/{id}", r.billHandler.UpdateBill).Methods(http.MethodPut)
	api.HandleFunc("/bills/{id}", r.billHandler.DeleteBill).Methods(http.MethodDelete)

	// Audit trail (read only)
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{entity}/{entityId}", r.auditLogHandler.GetEntityHistory).Methods(http.MethodGet)

	// Preflight requests; the CORS middleware answers them before this runs.
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
