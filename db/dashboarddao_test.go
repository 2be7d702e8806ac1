package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops-server/model"
)

func TestGetSummary(t *testing.T) {
	gdb := setupTestDB(t)
	route := seedReference(t, gdb)

	flightDAO := NewFlightDAO(gdb)
	scheduleTestFlight(t, flightDAO, route.RouteID)

	maintenanceDAO := NewMaintenanceDAO(gdb)
	_, err := maintenanceDAO.CreateJob("N123AB", model.JobTypeRoutine, "")
	require.NoError(t, err)
	closed, err := maintenanceDAO.CreateJob("N123AB", model.JobTypeRepair, "")
	require.NoError(t, err)
	_, err = maintenanceDAO.CloseJob(closed.JobID, nil)
	require.NoError(t, err)

	dashboardDAO := NewDashboardDAO(gdb)
	summary, err := dashboardDAO.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Airports)
	assert.Equal(t, int64(1), summary.Routes)
	assert.Equal(t, int64(1), summary.Aircraft)
	assert.Equal(t, int64(1), summary.ActiveAircraft)
	assert.Equal(t, int64(0), summary.RetiredAircraft)
	assert.Equal(t, int64(1), summary.Flights)
	assert.Equal(t, int64(4), summary.CrewMembers)
	assert.Equal(t, int64(1), summary.OpenJobs)
	assert.Equal(t, int64(1), summary.ClosedJobs)
}
