package handlers

import (
	"log"
	"net/http"

	"airline-ops-server/db"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		writeDetail(w, http.StatusMethodNotAllowed, "Method not supported")
		return
	}

	err := db.ResetTestDatabase()
	if err != nil {
		log.Println("Error resetting test database: ", err)
		writeDetail(w, http.StatusInternalServerError, "Error resetting test database")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
