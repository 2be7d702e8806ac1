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

func HandleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getReports(w, r)
	case "POST":
		createReport(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func getReports(w http.ResponseWriter, r *http.Request) {
	reportDAO := db.NewReportDAO(db.GetDB())

	reports, err := reportDAO.GetReports()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

type createReportInput struct {
	JobID    *int    `json:"job_id"`
	Title    string  `json:"title"`
	Summary  *string `json:"summary"`
	Findings *string `json:"findings"`
}

func createReport(w http.ResponseWriter, r *http.Request) {
	var input createReportInput
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

	reportDAO := db.NewReportDAO(db.GetDB())
	report, err := reportDAO.CreateReport(model.Report{
		JobID:    input.JobID,
		Title:    input.Title,
		Summary:  input.Summary,
		Findings: input.Findings,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	reportID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || reportID <= 0 {
		log.Println("Wrong report id value: ", err)
		writeDetail(w, http.StatusBadRequest, "The provided report id is not valid")
		return
	}

	reportDAO := db.NewReportDAO(db.GetDB())
	report, err := reportDAO.GetReportById(reportID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
