package model

// DashboardSummary is the read-only aggregate the role dashboards render.
type DashboardSummary struct {
	Airports              int64 `json:"airports"`
	Routes                int64 `json:"routes"`
	Aircraft              int64 `json:"aircraft"`
	ActiveAircraft        int64 `json:"active_aircraft"`
	AircraftInMaintenance int64 `json:"aircraft_in_maintenance"`
	RetiredAircraft       int64 `json:"retired_aircraft"`
	Flights               int64 `json:"flights"`
	CrewMembers           int64 `json:"crew_members"`
	OpenJobs              int64 `json:"open_jobs"`
	ClosedJobs            int64 `json:"closed_jobs"`
	Parts                 int64 `json:"parts"`
	Reports               int64 `json:"reports"`
}
