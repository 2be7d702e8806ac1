package db

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"airline-ops-server/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := InitInMemoryDB(t.Name())
	require.NoError(t, err)
	require.NotNil(t, gdb)

	return gdb
}

// seedReference loads the reference data most DAO tests need: two airports,
// one route between them, one active aircraft and a minimal crew registry.
func seedReference(t *testing.T, gdb *gorm.DB) model.Route {
	airportDAO := NewAirportDAO(gdb)
	_, err := airportDAO.CreateAirport(model.Airport{AirportCode: "SFO", AirportName: "San Francisco International"})
	require.NoError(t, err)
	_, err = airportDAO.CreateAirport(model.Airport{AirportCode: "ORD", AirportName: "Chicago O'Hare International"})
	require.NoError(t, err)

	routeDAO := NewRouteDAO(gdb)
	route, err := routeDAO.CreateRoute(model.Route{
		SourceAirportCode:      "SFO",
		DestinationAirportCode: "ORD",
		Capacity:               180,
	})
	require.NoError(t, err)

	aircraftDAO := NewAircraftDAO(gdb)
	_, err = aircraftDAO.CreateAircraft(model.Aircraft{
		RegistrationNumber: "N123AB",
		Company:            "Boeing",
		Model:              "B737",
		Capacity:           180,
		Status:             model.AircraftStatusActive,
	})
	require.NoError(t, err)

	crewDAO := NewCrewDAO(gdb)
	members := []model.CrewMember{
		{Email: "pilot@x", Name: "Pat Pilot", IsPilot: true},
		{Email: "copilot@x", Name: "Casey Copilot", IsPilot: true},
		{Email: "cabin1@x", Name: "Charlie Cabin", IsPilot: false},
		{Email: "cabin2@x", Name: "Dana Cabin", IsPilot: false},
	}
	for _, member := range members {
		_, err = crewDAO.CreateCrewMember(member)
		require.NoError(t, err)
	}

	return route
}

func TestInitInMemoryDB(t *testing.T) {
	gdb := setupTestDB(t)
	require.NotNil(t, gdb)

	// schema is migrated, reference data can be written
	seedReference(t, gdb)
}

func TestResetTestDatabase(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	err := ResetTestDatabase()
	require.NoError(t, err)

	var count int64
	result := gdb.Model(&model.Route{}).Count(&count)
	require.NoError(t, result.Error)
	require.Zero(t, count)
}
