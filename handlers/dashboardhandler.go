package handlers

import (
	"log"
	"net/http"

	"airline-ops-server/db"
)

func HandleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	dashboardDAO := db.NewDashboardDAO(db.GetDB())
	summary, err := dashboardDAO.GetSummary()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
