package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rivergarden/training-backend/internal/delivery/http/handler"
	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	courseHandler       *handler.CourseHandler
	enrollmentHandler   *handler.EnrollmentHandler
	certificateHandler  *handler.CertificateHandler
	statsHandler        *handler.StatsHandler
	teamHandler         *handler.TeamHandler
	supervisorHandler   *handler.SupervisorHandler
	adminHandler        *handler.AdminHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	courseHandler *handler.CourseHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	certificateHandler *handler.CertificateHandler,
	statsHandler *handler.StatsHandler,
	teamHandler *handler.TeamHandler,
	supervisorHandler *handler.SupervisorHandler,
	adminHandler *handler.AdminHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		courseHandler:       courseHandler,
		enrollmentHandler:   enrollmentHandler,
		certificateHandler:  certificateHandler,
		statsHandler:        statsHandler,
		teamHandler:         teamHandler,
		supervisorHandler:   supervisorHandler,
		adminHandler:        adminHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Course catalog
	courses := api.PathPrefix("/courses").Subrouter()
	courses.Use(r.authMiddleware.Authenticate)
	courses.HandleFunc("", r.courseHandler.ListCourses).Methods(http.MethodGet)
	courses.HandleFunc("/{id:[0-9]+}", r.courseHandler.GetCourse).Methods(http.MethodGet)

	// Enrollment lifecycle
	enrollments := api.PathPrefix("/enrollments").Subrouter()
	enrollments.Use(r.authMiddleware.Authenticate)
	enrollments.HandleFunc("", r.enrollmentHandler.GetMyEnrollments).Methods(http.MethodGet)
	enrollments.HandleFunc("", r.enrollmentHandler.Enroll).Methods(http.MethodPost)
	enrollments.HandleFunc("/{courseId:[0-9]+}/progress", r.enrollmentHandler.UpdateProgress).Methods(http.MethodPatch)
	enrollments.HandleFunc("/{courseId:[0-9]+}/complete", r.enrollmentHandler.CompleteCourse).Methods(http.MethodPost)

	// Certificates
	certificates := api.PathPrefix("/certificates").Subrouter()
	certificates.Use(r.authMiddleware.Authenticate)
	certificates.HandleFunc("", r.certificateHandler.GetMyCertificates).Methods(http.MethodGet)
	certificates.HandleFunc("/{id}/download", r.certificateHandler.DownloadCertificate).Methods(http.MethodGet)

	// Personal stats
	stats := api.PathPrefix("/stats").Subrouter()
	stats.Use(r.authMiddleware.Authenticate)
	stats.HandleFunc("", r.statsHandler.GetMyStats).Methods(http.MethodGet)
	stats.HandleFunc("/compliance-trend", r.statsHandler.GetComplianceTrend).Methods(http.MethodGet)

	// Notifications
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPatch)

	// Manager hierarchy routes (supervisor or admin)
	team := api.PathPrefix("/team").Subrouter()
	team.Use(r.authMiddleware.Authenticate)
	team.Use(middleware.RequireManager)
	team.HandleFunc("/members", r.teamHandler.GetMembers).Methods(http.MethodGet)
	team.HandleFunc("/members/{id}", r.teamHandler.GetMember).Methods(http.MethodGet)
	team.HandleFunc("/members/{id}/enrollments", r.teamHandler.GetMemberEnrollments).Methods(http.MethodGet)
	team.HandleFunc("/members/{id}/assign-course", r.teamHandler.AssignCourse).Methods(http.MethodPost)
	team.HandleFunc("/stats", r.teamHandler.GetTeamStats).Methods(http.MethodGet)
	team.HandleFunc("/send-reminders", r.teamHandler.SendReminders).Methods(http.MethodPost)

	// Supervisor assignment routes
	supervisor := api.PathPrefix("/supervisor").Subrouter()
	supervisor.Use(r.authMiddleware.Authenticate)
	supervisor.Use(middleware.RequireSupervisor)
	supervisor.HandleFunc("/team", r.supervisorHandler.GetTeam).Methods(http.MethodGet)
	supervisor.HandleFunc("/team/{id}/enrollments", r.supervisorHandler.GetMemberEnrollments).Methods(http.MethodGet)
	supervisor.HandleFunc("/assign-course", r.supervisorHandler.AssignCourse).Methods(http.MethodPost)
	supervisor.HandleFunc("/remove-course", r.supervisorHandler.RemoveCourse).Methods(http.MethodPost)
	supervisor.HandleFunc("/stats", r.supervisorHandler.GetStats).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/assign-supervisor", r.adminHandler.AssignSupervisor).Methods(http.MethodPost)
	admin.HandleFunc("/unassign-supervisor", r.adminHandler.UnassignSupervisor).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
