package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

// rejectPastDeparture is set once at startup from configuration; it decides
// whether new flights with a past departure instant are rejected.
var rejectPastDeparture = true

func SetSchedulingPolicy(rejectPast bool) {
	rejectPastDeparture = rejectPast
}

func HandleFlights(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getFlights(w, r)
	case "POST":
		scheduleFlight(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func HandleModifyFlight(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getFlight(w, r)
	case "PUT":
		updateFlight(w, r)
	case "DELETE":
		deleteFlight(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getFlights(w http.ResponseWriter, r *http.Request) {
	flightDAO := db.NewFlightDAO(db.GetDB())

	flights, err := flightDAO.GetFlights()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, flights)
}

func scheduleFlight(w http.ResponseWriter, r *http.Request) {
	var flight model.FlightInstance
	err := json.NewDecoder(r.Body).Decode(&flight)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		writeDetail(w, http.StatusBadRequest, "Wrong data provided")
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	if flight.FlightNumber == "" || flight.Date == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Flight number and date are required")
		return
	}
	if flight.AircraftRegistration == "" {
		log.Println("Missing aircraft registration")
		writeDetail(w, http.StatusBadRequest, "Aircraft registration is required")
		return
	}

	flightDAO := db.NewFlightDAO(db.GetDB())
	flight, err = flightDAO.ScheduleFlight(flight, rejectPastDeparture)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, flight)
}

func getFlight(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	flightDAO := db.NewFlightDAO(db.GetDB())
	flight, err := flightDAO.GetFlightByKey(vars["number"], vars["date"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, flight)
}

type updateFlightInput struct {
	RouteID                int    `json:"route_id"`
	ScheduledDepartureTime string `json:"scheduled_departure_time"`
	ScheduledArrivalTime   string `json:"scheduled_arrival_time"`
	AircraftRegistration   string `json:"aircraft_registration"`
}

func updateFlight(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input updateFlightInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		writeDetail(w, http.StatusBadRequest, "Wrong data provided")
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	if input.AircraftRegistration == "" {
		log.Println("Missing aircraft registration")
		writeDetail(w, http.StatusBadRequest, "Aircraft registration is required")
		return
	}

	flightDAO := db.NewFlightDAO(db.GetDB())
	flight, err := flightDAO.UpdateFlight(model.FlightInstance{
		FlightNumber:           vars["number"],
		Date:                   vars["date"],
		RouteID:                input.RouteID,
		ScheduledDepartureTime: input.ScheduledDepartureTime,
		ScheduledArrivalTime:   input.ScheduledArrivalTime,
		AircraftRegistration:   input.AircraftRegistration,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, flight)
}

func deleteFlight(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	flightDAO := db.NewFlightDAO(db.GetDB())
	err := flightDAO.DeleteFlight(vars["number"], vars["date"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
