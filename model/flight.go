package model

// FlightInstance is one occurrence of a flight number on a specific date.
// Date is kept as a YYYY-MM-DD string and the times as HH:MM strings, the
// format the clients send; they are validated before reaching the database.
type FlightInstance struct {
	FlightNumber           string `gorm:"column:flight_number;primaryKey" json:"flight_number"`
	Date                   string `gorm:"column:flight_date;primaryKey" json:"date"`
	RouteID                int    `gorm:"column:id_route;type:integer;not null" json:"route_id"`
	ScheduledDepartureTime string `gorm:"column:scheduled_departure_time;type:text;not null" json:"scheduled_departure_time"`
	ScheduledArrivalTime   string `gorm:"column:scheduled_arrival_time;type:text;not null" json:"scheduled_arrival_time"`
	AircraftRegistration   string `gorm:"column:aircraft_registration;type:text;not null" json:"aircraft_registration"`
}

func (FlightInstance) TableName() string {
	return "flight_instance"
}
