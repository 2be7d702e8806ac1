package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops-server/model"
)

func TestCreateRoute(t *testing.T) {
	gdb := setupTestDB(t)
	route := seedReference(t, gdb)

	assert.Equal(t, "SFO", route.SourceAirportCode)
	assert.Equal(t, "ORD", route.DestinationAirportCode)
	assert.NotZero(t, route.RouteID)
}

func TestCreateRoute_SameSourceAndDestination(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	routeDAO := NewRouteDAO(gdb)
	_, err := routeDAO.CreateRoute(model.Route{
		SourceAirportCode:      "SFO",
		DestinationAirportCode: "SFO",
		Capacity:               100,
	})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}

func TestCreateRoute_NonPositiveCapacity(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	routeDAO := NewRouteDAO(gdb)
	for _, capacity := range []int{0, -5} {
		_, err := routeDAO.CreateRoute(model.Route{
			SourceAirportCode:      "SFO",
			DestinationAirportCode: "ORD",
			Capacity:               capacity,
		})
		assert.Error(t, err)
		assert.IsType(t, &model.ValidationError{}, err)
	}
}

func TestCreateRoute_UnknownAirport(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	routeDAO := NewRouteDAO(gdb)
	_, err := routeDAO.CreateRoute(model.Route{
		SourceAirportCode:      "XXX",
		DestinationAirportCode: "ORD",
		Capacity:               100,
	})
	assert.Error(t, err)
	assert.IsType(t, &model.ValidationError{}, err)
}

func TestUpdateRouteCapacity(t *testing.T) {
	gdb := setupTestDB(t)
	route := seedReference(t, gdb)

	routeDAO := NewRouteDAO(gdb)
	updated, err := routeDAO.UpdateRouteCapacity(route.RouteID, 220)
	require.NoError(t, err)
	assert.Equal(t, 220, updated.Capacity)

	_, err = routeDAO.UpdateRouteCapacity(route.RouteID, 0)
	assert.IsType(t, &model.ValidationError{}, err)

	_, err = routeDAO.UpdateRouteCapacity(99999, 100)
	assert.IsType(t, &model.NotFoundError{}, err)
}

func TestDeleteRoute(t *testing.T) {
	gdb := setupTestDB(t)
	route := seedReference(t, gdb)

	routeDAO := NewRouteDAO(gdb)
	err := routeDAO.DeleteRoute(route.RouteID)
	require.NoError(t, err)

	_, err = routeDAO.GetRouteById(route.RouteID)
	assert.IsType(t, &model.NotFoundError{}, err)
}

func TestDeleteRoute_NotFound(t *testing.T) {
	gdb := setupTestDB(t)

	routeDAO := NewRouteDAO(gdb)
	err := routeDAO.DeleteRoute(42)
	assert.Error(t, err)
	assert.IsType(t, &model.NotFoundError{}, err)
}

func TestCreateAirport_Duplicate(t *testing.T) {
	gdb := setupTestDB(t)
	seedReference(t, gdb)

	airportDAO := NewAirportDAO(gdb)
	_, err := airportDAO.CreateAirport(model.Airport{AirportCode: "SFO", AirportName: "Duplicate"})
	assert.Error(t, err)
	assert.IsType(t, &model.ConflictError{}, err)
}
