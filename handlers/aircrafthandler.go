package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func HandleAircraft(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getAircraft(w, r)
	case "POST":
		createAircraft(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func HandleModifyAircraft(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "PUT":
		updateAircraft(w, r)
	case "DELETE":
		deleteAircraft(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getAircraft(w http.ResponseWriter, r *http.Request) {
	aircraftDAO := db.NewAircraftDAO(db.GetDB())

	aircraft, err := aircraftDAO.GetAllAircraft()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, aircraft)
}

func createAircraft(w http.ResponseWriter, r *http.Request) {
	var aircraft model.Aircraft
	err := json.NewDecoder(r.Body).Decode(&aircraft)
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

	if aircraft.RegistrationNumber == "" || aircraft.Company == "" || aircraft.Model == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Registration number, company and model are required")
		return
	}

	aircraftDAO := db.NewAircraftDAO(db.GetDB())
	aircraft, err = aircraftDAO.CreateAircraft(aircraft)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, aircraft)
}

type updateAircraftInput struct {
	Company  string `json:"company"`
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

func updateAircraft(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]

	var input updateAircraftInput
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

	if input.Company == "" || input.Model == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Company and model are required")
		return
	}

	aircraftDAO := db.NewAircraftDAO(db.GetDB())
	aircraft, err := aircraftDAO.UpdateAircraft(model.Aircraft{
		RegistrationNumber: registration,
		Company:            input.Company,
		Model:              input.Model,
		Capacity:           input.Capacity,
		Status:             input.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, aircraft)
}

func deleteAircraft(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]

	aircraftDAO := db.NewAircraftDAO(db.GetDB())
	err := aircraftDAO.DeleteAircraft(registration)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
