package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func HandleAircraftParts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getAircraftParts(w, r)
	case "POST":
		addPart(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getAircraftParts(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]

	partDAO := db.NewPartDAO(db.GetDB())
	parts, err := partDAO.GetPartsByAircraft(registration)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, parts)
}

type addPartInput struct {
	PartNumber        string `json:"part_number"`
	Manufacturer      string `json:"manufacturer"`
	Model             string `json:"model"`
	ManufacturingDate string `json:"manufacturing_date"`
}

func addPart(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]

	var input addPartInput
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

	partDAO := db.NewPartDAO(db.GetDB())
	part, err := partDAO.AddPart(model.Part{
		AircraftRegistration: registration,
		PartNumber:           input.PartNumber,
		Manufacturer:         input.Manufacturer,
		Model:                input.Model,
		ManufacturingDate:    input.ManufacturingDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, part)
}

// HandleJobParts lists all parts recorded for the job's aircraft.
func HandleJobParts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	jobID, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	partDAO := db.NewPartDAO(db.GetDB())
	parts, err := partDAO.GetPartsByJob(jobID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, parts)
}
