package model

// Part is owned by an aircraft, not by a maintenance job: parts recorded
// under one job stay visible from every other job on the same aircraft.
type Part struct {
	AircraftRegistration string `gorm:"column:aircraft_registration;primaryKey" json:"aircraft_registration"`
	PartNumber           string `gorm:"column:part_number;primaryKey" json:"part_number"`
	Manufacturer         string `gorm:"column:manufacturer;type:text;not null" json:"manufacturer"`
	Model                string `gorm:"column:model;type:text;not null" json:"model"`
	ManufacturingDate    string `gorm:"column:manufacturing_date;type:text" json:"manufacturing_date"`
}

func (Part) TableName() string {
	return "part"
}
