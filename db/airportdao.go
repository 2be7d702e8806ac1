package db

import (
	"errors"

	"gorm.io/gorm"

	"airline-ops-server/model"
)

type AirportDAO struct {
	db *gorm.DB
}

func NewAirportDAO(db *gorm.DB) *AirportDAO {
	return &AirportDAO{db: db}
}

func (airportDAO *AirportDAO) CreateAirport(airport model.Airport) (model.Airport, error) {
	// check unique code
	var existing model.Airport
	result := airportDAO.db.Where("airport_code = ?", airport.AirportCode).First(&existing)
	if result.Error == nil {
		return model.Airport{}, model.NewConflictError("airport " + airport.AirportCode + " already exists")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Airport{}, result.Error
	}

	result = airportDAO.db.Create(&airport)
	if result.Error != nil {
		return model.Airport{}, result.Error
	}

	return airport, nil
}

func (airportDAO *AirportDAO) GetAirports() ([]model.Airport, error) {
	var airports []model.Airport
	result := airportDAO.db.Find(&airports)
	return airports, result.Error
}

func (airportDAO *AirportDAO) GetAirportByCode(code string) (model.Airport, error) {
	var airport model.Airport
	result := airportDAO.db.Where("airport_code = ?", code).First(&airport)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Airport{}, model.NewNotFoundError("airport " + code + " not found")
		}
		return model.Airport{}, result.Error
	}
	return airport, nil
}
