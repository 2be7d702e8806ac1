package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func HandleAirports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getAirports(w, r)
	case "POST":
		createAirport(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getAirports(w http.ResponseWriter, r *http.Request) {
	airportDAO := db.NewAirportDAO(db.GetDB())

	airports, err := airportDAO.GetAirports()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, airports)
}

func createAirport(w http.ResponseWriter, r *http.Request) {
	var airport model.Airport
	err := json.NewDecoder(r.Body).Decode(&airport)
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

	if airport.AirportCode == "" || airport.AirportName == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Airport code and name are required")
		return
	}

	airportDAO := db.NewAirportDAO(db.GetDB())
	airport, err = airportDAO.CreateAirport(airport)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, airport)
}
