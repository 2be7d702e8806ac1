package model

type Airport struct {
	AirportCode string `gorm:"column:airport_code;primaryKey" json:"airport_code"`
	AirportName string `gorm:"column:airport_name;type:text;not null" json:"airport_name"`
}

func (Airport) TableName() string {
	return "airport"
}
