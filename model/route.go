package model

type Route struct {
	RouteID                int    `gorm:"column:id_route;primaryKey;autoIncrement" json:"route_id"`
	SourceAirportCode      string `gorm:"column:source_airport_code;type:text;not null" json:"source_airport_code"`
	DestinationAirportCode string `gorm:"column:destination_airport_code;type:text;not null" json:"destination_airport_code"`
	Capacity               int    `gorm:"column:capacity;type:integer;not null" json:"capacity"`
}

func (Route) TableName() string {
	return "route"
}
