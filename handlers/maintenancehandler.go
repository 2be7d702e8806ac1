package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"airline-ops-server/db"
	"airline-ops-server/model"
)

func HandleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getJobs(w, r)
	case "POST":
		createJob(w, r)
	default:
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
	}
}

func jobIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	jobID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || jobID <= 0 {
		log.Println("Wrong job id value: ", err)
		writeDetail(w, http.StatusBadRequest, "The provided job id is not valid")
		return 0, false
	}
	return jobID, true
}

func getJobs(w http.ResponseWriter, r *http.Request) {
	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())

	jobs, err := maintenanceDAO.GetJobs()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

type createJobInput struct {
	AircraftRegistration string `json:"aircraft_registration"`
	JobType              string `json:"job_type"`
	Remarks              string `json:"remarks"`
}

func createJob(w http.ResponseWriter, r *http.Request) {
	var input createJobInput
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

	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())
	job, err := maintenanceDAO.CreateJob(input.AircraftRegistration, input.JobType, input.Remarks)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

func HandleGetJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	jobID, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())
	job, err := maintenanceDAO.GetJobById(jobID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func HandleStartJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	jobID, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())
	job, err := maintenanceDAO.StartJob(jobID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

type engineerInput struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type assignEngineersInput struct {
	Engineers []engineerInput `json:"engineers"`
}

func HandleAssignEngineers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	jobID, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	var input assignEngineersInput
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

	engineers := make([]model.JobEngineer, 0, len(input.Engineers))
	for _, engineer := range input.Engineers {
		engineers = append(engineers, model.JobEngineer{
			Email: engineer.Email,
			Role:  engineer.Role,
		})
	}

	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())
	job, err := maintenanceDAO.AssignEngineers(jobID, engineers)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

type closeJobInput struct {
	Remarks *string `json:"remarks"`
}

func HandleCloseJob(w http.ResponseWriter, r *http.Request) {
	closeOrCancelJob(w, r, false)
}

func HandleCancelJob(w http.ResponseWriter, r *http.Request) {
	closeOrCancelJob(w, r, true)
}

func closeOrCancelJob(w http.ResponseWriter, r *http.Request, cancel bool) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	jobID, ok := jobIDFromPath(w, r)
	if !ok {
		return
	}

	// the body is optional, a close without remarks keeps the old ones
	var input closeJobInput
	if r.Body != nil {
		err := json.NewDecoder(r.Body).Decode(&input)
		if err != nil && !errors.Is(err, io.EOF) {
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
	}

	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())
	var job model.MaintenanceJob
	var err error
	if cancel {
		job, err = maintenanceDAO.CancelJob(jobID, input.Remarks)
	} else {
		job, err = maintenanceDAO.CloseJob(jobID, input.Remarks)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// HandleMyJobs lists the jobs an engineer has been assigned to.
func HandleMyJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Println("Missing engineer email")
		writeDetail(w, http.StatusBadRequest, "Engineer email is required")
		return
	}

	// an engineer with no assignments gets an empty list, not an error
	maintenanceDAO := db.NewMaintenanceDAO(db.GetDB())
	jobs := []model.MaintenanceJob{}
	found, err := maintenanceDAO.GetJobsByEngineerEmail(email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jobs = append(jobs, found...)

	writeJSON(w, http.StatusOK, jobs)
}
