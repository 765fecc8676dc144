package http

import (
	"net/http"

	"go-eldercare-backend/internal/delivery/http/handler"
	"go-eldercare-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	caregiverHandler   *handler.CaregiverHandler
	familyHandler      *handler.FamilyHandler
	medicationHandler  *handler.MedicationHandler
	appointmentHandler *handler.AppointmentHandler
	scheduleHandler    *handler.ScheduleHandler
	reminderHandler    *handler.ReminderHandler
	adherenceHandler   *handler.AdherenceHandler
	reportHandler      *handler.ReportHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	caregiverHandler *handler.CaregiverHandler,
	familyHandler *handler.FamilyHandler,
	medicationHandler *handler.MedicationHandler,
	appointmentHandler *handler.AppointmentHandler,
	scheduleHandler *handler.ScheduleHandler,
	reminderHandler *handler.ReminderHandler,
	adherenceHandler *handler.AdherenceHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		caregiverHandler:   caregiverHandler,
		familyHandler:      familyHandler,
		medicationHandler:  medicationHandler,
		appointmentHandler: appointmentHandler,
		scheduleHandler:    scheduleHandler,
		reminderHandler:    reminderHandler,
		adherenceHandler:   adherenceHandler,
		reportHandler:      reportHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Protected routes (any authenticated role)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/caregivers", r.caregiverHandler.GetAllCaregivers).Methods(http.MethodGet)
	protected.HandleFunc("/family-members", r.familyHandler.GetAllFamilyMembers).Methods(http.MethodGet)
	protected.HandleFunc("/medications", r.medicationHandler.GetAllMedications).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)

	protected.HandleFunc("/schedules/{patientId}", r.scheduleHandler.GetDailySchedule).Methods(http.MethodGet)
	protected.HandleFunc("/caregivers/{id}/schedules", r.caregiverHandler.GetCaregiverSchedules).Methods(http.MethodGet)
	protected.HandleFunc("/family-members/{id}/schedules", r.familyHandler.GetFamilySchedules).Methods(http.MethodGet)

	protected.HandleFunc("/reminders/{id}/done", r.reminderHandler.MarkDone).Methods(http.MethodPost)
	protected.HandleFunc("/adherence/{patientId}", r.adherenceHandler.PredictAdherence).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	admin.HandleFunc("/caregivers", r.caregiverHandler.CreateCaregiver).Methods(http.MethodPost)
	admin.HandleFunc("/caregivers/{id}", r.caregiverHandler.DeleteCaregiver).Methods(http.MethodDelete)
	admin.HandleFunc("/family-members", r.familyHandler.CreateFamilyMember).Methods(http.MethodPost)
	admin.HandleFunc("/family-members/{id}", r.familyHandler.DeleteFamilyMember).Methods(http.MethodDelete)
	admin.HandleFunc("/medications", r.medicationHandler.CreateMedication).Methods(http.MethodPost)
	admin.HandleFunc("/medications/{id}", r.medicationHandler.DeleteMedication).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	admin.HandleFunc("/reports", r.reportHandler.GetAdherenceReport).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
