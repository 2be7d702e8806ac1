package model

const (
	AircraftStatusActive      = "active"
	AircraftStatusMaintenance = "maintenance"
	AircraftStatusRetired     = "retired"
)

type Aircraft struct {
	RegistrationNumber string `gorm:"column:registration_number;primaryKey" json:"registration_number"`
	Company            string `gorm:"column:company;type:text;not null" json:"company"`
	Model              string `gorm:"column:model;type:text;not null" json:"model"`
	Capacity           int    `gorm:"column:capacity;type:integer;not null" json:"capacity"`
	Status             string `gorm:"column:status;type:text;not null" json:"status"`
}

func (Aircraft) TableName() string {
	return "aircraft"
}

func IsValidAircraftStatus(status string) bool {
	return status == AircraftStatusActive ||
		status == AircraftStatusMaintenance ||
		status == AircraftStatusRetired
}
