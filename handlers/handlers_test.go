package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func setupTestRouter(t *testing.T) *mux.Router {
	_, err := db.InitInMemoryDB(t.Name())
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/api/admin/airports", HandleAirports)
	router.HandleFunc("/api/admin/routes", HandleRoutes)
	router.HandleFunc("/api/admin/routes/{id}", HandleModifyRoute)
	router.HandleFunc("/api/admin/aircraft", HandleAircraft)
	router.HandleFunc("/api/admin/aircraft/{registration}", HandleModifyAircraft)
	router.HandleFunc("/api/admin/dashboard-summary", HandleDashboardSummary)
	router.HandleFunc("/api/scheduler/crew", HandleCrewMembers)
	router.HandleFunc("/api/scheduler/flights", HandleFlights)
	router.HandleFunc("/api/scheduler/flights/{number}/{date}", HandleModifyFlight)
	router.HandleFunc("/api/scheduler/flights/{number}/{date}/crew", HandleCrewAssignment)
	router.HandleFunc("/api/engineer/jobs", HandleJobs)
	router.HandleFunc("/api/engineer/jobs/{id}", HandleGetJob)
	router.HandleFunc("/api/engineer/jobs/{id}/assign-engineers", HandleAssignEngineers)
	router.HandleFunc("/api/engineer/jobs/{id}/close", HandleCloseJob)
	router.HandleFunc("/api/engineer/aircraft/{registration}/parts", HandleAircraftParts)

	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, &buf)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func seedViaAPI(t *testing.T, router *mux.Router) int {
	resp := doJSON(t, router, "POST", "/api/admin/airports", model.Airport{AirportCode: "SFO", AirportName: "San Francisco International"})
	require.Equal(t, http.StatusCreated, resp.Code)
	resp = doJSON(t, router, "POST", "/api/admin/airports", model.Airport{AirportCode: "ORD", AirportName: "Chicago O'Hare International"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, "POST", "/api/admin/routes", map[string]interface{}{
		"source_airport_code":      "SFO",
		"destination_airport_code": "ORD",
		"capacity":                 180,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var route model.Route
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &route))

	resp = doJSON(t, router, "POST", "/api/admin/aircraft", model.Aircraft{
		RegistrationNumber: "N123AB",
		Company:            "Boeing",
		Model:              "B737",
		Capacity:           180,
		Status:             model.AircraftStatusActive,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	for _, member := range []model.CrewMember{
		{Email: "pilot@x", Name: "Pat Pilot", IsPilot: true},
		{Email: "copilot@x", Name: "Casey Copilot", IsPilot: true},
		{Email: "cabin1@x", Name: "Charlie Cabin", IsPilot: false},
	} {
		resp = doJSON(t, router, "POST", "/api/scheduler/crew", member)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	return route.RouteID
}

func TestScheduleAndAssignCrewFlow(t *testing.T) {
	router := setupTestRouter(t)
	routeID := seedViaAPI(t, router)

	resp := doJSON(t, router, "POST", "/api/scheduler/flights", map[string]interface{}{
		"flight_number":            "UA100",
		"date":                     "2030-06-01",
		"route_id":                 routeID,
		"scheduled_departure_time": "09:00",
		"scheduled_arrival_time":   "12:00",
		"aircraft_registration":    "N123AB",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, "POST", "/api/scheduler/flights/UA100/2030-06-01/crew", map[string]interface{}{
		"pilot_email":       "pilot@x",
		"co_pilot_email":    "copilot@x",
		"cabin_crew_emails": []string{"cabin1@x"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, "GET", "/api/scheduler/flights/UA100/2030-06-01/crew", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var assignment model.CrewAssignmentDetails
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &assignment))
	assert.Equal(t, "pilot@x", assignment.Pilot.Email)
	assert.Equal(t, "copilot@x", assignment.CoPilot.Email)
	require.Len(t, assignment.CabinCrew, 1)
	assert.Equal(t, "cabin1@x", assignment.CabinCrew[0].Email)
}

func TestAssignCrew_SamePilotRejected(t *testing.T) {
	router := setupTestRouter(t)
	routeID := seedViaAPI(t, router)

	resp := doJSON(t, router, "POST", "/api/scheduler/flights", map[string]interface{}{
		"flight_number":            "UA100",
		"date":                     "2030-06-01",
		"route_id":                 routeID,
		"scheduled_departure_time": "09:00",
		"scheduled_arrival_time":   "12:00",
		"aircraft_registration":    "N123AB",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, "POST", "/api/scheduler/flights/UA100/2030-06-01/crew", map[string]interface{}{
		"pilot_email":       "pilot@x",
		"co_pilot_email":    "pilot@x",
		"cabin_crew_emails": []string{"cabin1@x"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body["detail"])

	// the rejected call created nothing
	resp = doJSON(t, router, "GET", "/api/scheduler/flights/UA100/2030-06-01/crew", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMaintenanceJobFlow(t *testing.T) {
	router := setupTestRouter(t)
	seedViaAPI(t, router)

	resp := doJSON(t, router, "POST", "/api/engineer/jobs", map[string]interface{}{
		"aircraft_registration": "N123AB",
		"job_type":              "repair",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var job model.MaintenanceJob
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &job))
	assert.Equal(t, model.JobStatusPending, job.Status)

	jobPath := fmt.Sprintf("/api/engineer/jobs/%d", job.JobID)
	resp = doJSON(t, router, "POST", jobPath+"/assign-engineers", map[string]interface{}{
		"engineers": []map[string]string{{"email": "eng@x", "role": "Lead"}},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, "POST", jobPath+"/close", map[string]interface{}{
		"remarks": "fixed",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var closed model.MaintenanceJob
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &closed))
	assert.Equal(t, model.JobStatusCompleted, closed.Status)
	assert.NotNil(t, closed.CheckoutTime)
	assert.Equal(t, "fixed", closed.Remarks)

	// further engineer assignment is an invalid state transition
	resp = doJSON(t, router, "POST", jobPath+"/assign-engineers", map[string]interface{}{
		"engineers": []map[string]string{{"email": "eng2@x", "role": "Inspector"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestDeleteFlight_CascadeOverHTTP(t *testing.T) {
	router := setupTestRouter(t)
	routeID := seedViaAPI(t, router)

	resp := doJSON(t, router, "POST", "/api/scheduler/flights", map[string]interface{}{
		"flight_number":            "UA100",
		"date":                     "2030-06-01",
		"route_id":                 routeID,
		"scheduled_departure_time": "09:00",
		"scheduled_arrival_time":   "12:00",
		"aircraft_registration":    "N123AB",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, "POST", "/api/scheduler/flights/UA100/2030-06-01/crew", map[string]interface{}{
		"pilot_email":       "pilot@x",
		"co_pilot_email":    "copilot@x",
		"cabin_crew_emails": []string{"cabin1@x"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, "DELETE", "/api/scheduler/flights/UA100/2030-06-01", nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, "GET", "/api/scheduler/flights/UA100/2030-06-01/crew", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestScheduleFlight_DuplicateConflict(t *testing.T) {
	router := setupTestRouter(t)
	routeID := seedViaAPI(t, router)

	flight := map[string]interface{}{
		"flight_number":            "UA100",
		"date":                     "2030-06-01",
		"route_id":                 routeID,
		"scheduled_departure_time": "09:00",
		"scheduled_arrival_time":   "12:00",
		"aircraft_registration":    "N123AB",
	}

	resp := doJSON(t, router, "POST", "/api/scheduler/flights", flight)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, "POST", "/api/scheduler/flights", flight)
	assert.Equal(t, http.StatusConflict, resp.Code)
}
