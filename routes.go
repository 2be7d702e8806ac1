package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"airline-ops-server/handlers"
)

func SetupServer(port string) *http.Server {
	router := mux.NewRouter()

	// setup routes
	router.HandleFunc("/api/admin/airports", handlers.HandleAirports)
	router.HandleFunc("/api/admin/routes", handlers.HandleRoutes)
	router.HandleFunc("/api/admin/routes/{id}", handlers.HandleModifyRoute)
	router.HandleFunc("/api/admin/aircraft", handlers.HandleAircraft)
	router.HandleFunc("/api/admin/aircraft/{registration}", handlers.HandleModifyAircraft)
	router.HandleFunc("/api/admin/dashboard-summary", handlers.HandleDashboardSummary)

	router.HandleFunc("/api/scheduler/crew", handlers.HandleCrewMembers)
	router.HandleFunc("/api/scheduler/flights", handlers.HandleFlights)
	router.HandleFunc("/api/scheduler/flights/{number}/{date}", handlers.HandleModifyFlight)
	router.HandleFunc("/api/scheduler/flights/{number}/{date}/crew", handlers.HandleCrewAssignment)

	router.HandleFunc("/api/crew/my-schedule", handlers.HandleCrewSchedule)

	router.HandleFunc("/api/engineer/jobs", handlers.HandleJobs)
	router.HandleFunc("/api/engineer/jobs/{id}", handlers.HandleGetJob)
	router.HandleFunc("/api/engineer/jobs/{id}/start", handlers.HandleStartJob)
	router.HandleFunc("/api/engineer/jobs/{id}/assign-engineers", handlers.HandleAssignEngineers)
	router.HandleFunc("/api/engineer/jobs/{id}/close", handlers.HandleCloseJob)
	router.HandleFunc("/api/engineer/jobs/{id}/cancel", handlers.HandleCancelJob)
	router.HandleFunc("/api/engineer/jobs/{id}/parts", handlers.HandleJobParts)
	router.HandleFunc("/api/engineer/my-jobs", handlers.HandleMyJobs)
	router.HandleFunc("/api/engineer/aircraft/{registration}/parts", handlers.HandleAircraftParts)
	router.HandleFunc("/api/engineer/reports", handlers.HandleReports)
	router.HandleFunc("/api/engineer/reports/{id}", handlers.HandleGetReport)

	router.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server stopped: %v", err)
	}
}
