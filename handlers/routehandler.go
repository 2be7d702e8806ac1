package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func HandleRoutes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getRoutes(w, r)
	case "POST":
		createRoute(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func HandleModifyRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "PUT":
		updateRouteCapacity(w, r)
	case "DELETE":
		deleteRoute(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getRoutes(w http.ResponseWriter, r *http.Request) {
	routeDAO := db.NewRouteDAO(db.GetDB())

	routes, err := routeDAO.GetRoutes()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, routes)
}

func createRoute(w http.ResponseWriter, r *http.Request) {
	var route model.Route
	err := json.NewDecoder(r.Body).Decode(&route)
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

	if route.SourceAirportCode == "" || route.DestinationAirportCode == "" {
		log.Println("Missing required fields")
		writeDetail(w, http.StatusBadRequest, "Source and destination airport codes are required")
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	route, err = routeDAO.CreateRoute(route)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, route)
}

type updateRouteCapacityInput struct {
	Capacity int `json:"capacity"`
}

func updateRouteCapacity(w http.ResponseWriter, r *http.Request) {
	routeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || routeID <= 0 {
		log.Println("Wrong route id value: ", err)
		writeDetail(w, http.StatusBadRequest, "The provided route id is not valid")
		return
	}

	var input updateRouteCapacityInput
	err = json.NewDecoder(r.Body).Decode(&input)
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

	routeDAO := db.NewRouteDAO(db.GetDB())
	route, err := routeDAO.UpdateRouteCapacity(routeID, input.Capacity)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, route)
}

func deleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || routeID <= 0 {
		log.Println("Wrong route id value: ", err)
		writeDetail(w, http.StatusBadRequest, "The provided route id is not valid")
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	err = routeDAO.DeleteRoute(routeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
