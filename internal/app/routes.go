package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Clients
	r.HandleFunc("/api/client", deps.ClientHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/client", deps.ClientHandler.Register).Methods("POST")
	r.HandleFunc("/api/client/{id}", deps.ClientHandler.Update).Methods("PUT")
	r.HandleFunc("/api/client/{id}", deps.ClientHandler.Delete).Methods("DELETE")

	// Client import
	r.HandleFunc("/api/client/import/preview", deps.ImporterHandler.Preview).Methods("POST")
	r.HandleFunc("/api/client/import", deps.ImporterHandler.Import).Methods("POST")

	// Broadcast periods
	r.HandleFunc("/api/period", deps.PeriodHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/period", deps.PeriodHandler.Register).Methods("POST")
	r.HandleFunc("/api/period/{id}", deps.PeriodHandler.Update).Methods("PUT")
	r.HandleFunc("/api/period/{id}", deps.PeriodHandler.Delete).Methods("DELETE")

	// Weekly views
	r.HandleFunc("/api/weekly/expiring", deps.WeeklyHandler.GetExpiring).Methods("GET")
	r.HandleFunc("/api/weekly/broadcasting", deps.WeeklyHandler.GetBroadcasting).Methods("GET")
	r.HandleFunc("/api/weekly/expiring/{periodId}/handled", deps.WeeklyHandler.ToggleHandled).Methods("PUT")

	// Report
	r.HandleFunc("/api/report", deps.ReportHandler.Download).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.GetSummary).Methods("GET")
}
