package db

import (
	"errors"

	"gorm.io/gorm"

	"airline-ops-server/model"
)

type RouteDAO struct {
	db *gorm.DB
}

func NewRouteDAO(db *gorm.DB) *RouteDAO {
	return &RouteDAO{db: db}
}

func (routeDAO *RouteDAO) CreateRoute(route model.Route) (model.Route, error) {
	if route.SourceAirportCode == route.DestinationAirportCode {
		return model.Route{}, model.NewValidationError("source and destination airports must be different")
	}
	if route.Capacity <= 0 {
		return model.Route{}, model.NewValidationError("route capacity must be positive")
	}

	// both airports must be known reference data
	airportDAO := NewAirportDAO(routeDAO.db)
	if _, err := airportDAO.GetAirportByCode(route.SourceAirportCode); err != nil {
		var notFound *model.NotFoundError
		if errors.As(err, &notFound) {
			return model.Route{}, model.NewValidationError("source airport " + route.SourceAirportCode + " does not exist")
		}
		return model.Route{}, err
	}
	if _, err := airportDAO.GetAirportByCode(route.DestinationAirportCode); err != nil {
		var notFound *model.NotFoundError
		if errors.As(err, &notFound) {
			return model.Route{}, model.NewValidationError("destination airport " + route.DestinationAirportCode + " does not exist")
		}
		return model.Route{}, err
	}

	result := routeDAO.db.Create(&route)
	if result.Error != nil {
		return model.Route{}, result.Error
	}

	return route, nil
}

func (routeDAO *RouteDAO) GetRoutes() ([]model.Route, error) {
	var routes []model.Route
	result := routeDAO.db.Find(&routes)
	return routes, result.Error
}

func (routeDAO *RouteDAO) GetRouteById(routeID int) (model.Route, error) {
	var route model.Route
	result := routeDAO.db.First(&route, routeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Route{}, model.NewNotFoundError("route not found")
		}
		return model.Route{}, result.Error
	}
	return route, nil
}

func (routeDAO *RouteDAO) UpdateRouteCapacity(routeID int, capacity int) (model.Route, error) {
	if capacity <= 0 {
		return model.Route{}, model.NewValidationError("route capacity must be positive")
	}

	route, err := routeDAO.GetRouteById(routeID)
	if err != nil {
		return model.Route{}, err
	}

	route.Capacity = capacity
	result := routeDAO.db.Save(&route)
	if result.Error != nil {
		return model.Route{}, result.Error
	}

	return route, nil
}

func (routeDAO *RouteDAO) DeleteRoute(routeID int) error {
	result := routeDAO.db.Delete(&model.Route{}, routeID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.NewNotFoundError("route not found")
	}

	return nil
}
