package db

import (
	"gorm.io/gorm"

	"airline-ops-server/model"
)

type DashboardDAO struct {
	db *gorm.DB
}

func NewDashboardDAO(db *gorm.DB) *DashboardDAO {
	return &DashboardDAO{db: db}
}

func (dashboardDAO *DashboardDAO) GetSummary() (model.DashboardSummary, error) {
	var summary model.DashboardSummary

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&summary.Airports, dashboardDAO.db.Model(&model.Airport{})},
		{&summary.Routes, dashboardDAO.db.Model(&model.Route{})},
		{&summary.Aircraft, dashboardDAO.db.Model(&model.Aircraft{})},
		{&summary.ActiveAircraft, dashboardDAO.db.Model(&model.Aircraft{}).Where("status = ?", model.AircraftStatusActive)},
		{&summary.AircraftInMaintenance, dashboardDAO.db.Model(&model.Aircraft{}).Where("status = ?", model.AircraftStatusMaintenance)},
		{&summary.RetiredAircraft, dashboardDAO.db.Model(&model.Aircraft{}).Where("status = ?", model.AircraftStatusRetired)},
		{&summary.Flights, dashboardDAO.db.Model(&model.FlightInstance{})},
		{&summary.CrewMembers, dashboardDAO.db.Model(&model.CrewMember{})},
		{&summary.OpenJobs, dashboardDAO.db.Model(&model.MaintenanceJob{}).Where("status IN ?", []string{model.JobStatusPending, model.JobStatusInProgress})},
		{&summary.ClosedJobs, dashboardDAO.db.Model(&model.MaintenanceJob{}).Where("status IN ?", []string{model.JobStatusCompleted, model.JobStatusCancelled})},
		{&summary.Parts, dashboardDAO.db.Model(&model.Part{})},
		{&summary.Reports, dashboardDAO.db.Model(&model.Report{})},
	}

	for _, count := range counts {
		result := count.query.Count(count.dest)
		if result.Error != nil {
			return model.DashboardSummary{}, result.Error
		}
	}

	return summary, nil
}
