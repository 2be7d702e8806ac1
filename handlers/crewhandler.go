package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func HandleCrewMembers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getCrewMembers(w, r)
	case "POST":
		createCrewMember(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func HandleCrewAssignment(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getCrewAssignment(w, r)
	case "POST":
		assignCrew(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getCrewMembers(w http.ResponseWriter, r *http.Request) {
	crewDAO := db.NewCrewDAO(db.GetDB())

	members, err := crewDAO.GetCrewMembers()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func createCrewMember(w http.ResponseWriter, r *http.Request) {
	var member model.CrewMember
	err := json.NewDecoder(r.Body).Decode(&member)
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

	if member.Email == "" || member.Name == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Email and name are required")
		return
	}

	crewDAO := db.NewCrewDAO(db.GetDB())
	member, err = crewDAO.CreateCrewMember(member)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

type assignCrewInput struct {
	PilotEmail      string   `json:"pilot_email"`
	CoPilotEmail    string   `json:"co_pilot_email"`
	CabinCrewEmails []string `json:"cabin_crew_emails"`
}

func assignCrew(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	flightNumber := vars["number"]
	date := vars["date"]

	var input assignCrewInput
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

	if input.PilotEmail == "" || input.CoPilotEmail == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Pilot and co-pilot emails are required")
		return
	}

	crewDAO := db.NewCrewDAO(db.GetDB())
	assignment, err := crewDAO.AssignCrew(flightNumber, date, input.PilotEmail, input.CoPilotEmail, input.CabinCrewEmails)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignment)
}

func getCrewAssignment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	flightNumber := vars["number"]
	date := vars["date"]

	crewDAO := db.NewCrewDAO(db.GetDB())
	assignment, err := crewDAO.GetCrewAssignment(flightNumber, date)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignment)
}

// HandleCrewSchedule lists the flights a crew member is rostered on.
func HandleCrewSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Println("Missing crew member email")
		writeDetail(w, http.StatusBadRequest, "Crew member email is required")
		return
	}

	// if the crew member has no flights, return an empty list, not an error
	flightDAO := db.NewFlightDAO(db.GetDB())
	flights := []model.FlightInstance{}
	found, err := flightDAO.GetFlightsByCrewEmail(email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	flights = append(flights, found...)

	writeJSON(w, http.StatusOK, flights)
}
