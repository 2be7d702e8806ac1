package model

const (
	CrewRolePilot   = "pilot"
	CrewRoleCoPilot = "co_pilot"
	CrewRoleCabin   = "cabin"
)

// CrewAssignmentMember is one roster row of a flight's crew assignment.
// The full assignment for a flight is the set of its rows; assignments are
// always replaced wholesale, never patched row by row.
type CrewAssignmentMember struct {
	FlightNumber string `gorm:"column:flight_number;primaryKey" json:"flight_number"`
	Date         string `gorm:"column:flight_date;primaryKey" json:"date"`
	Email        string `gorm:"column:email;primaryKey" json:"email"`
	Role         string `gorm:"column:crew_role;type:text;not null" json:"role"`
}

func (CrewAssignmentMember) TableName() string {
	return "crew_assignment"
}

// CrewAssignmentDetails is the roster view returned to callers, with the
// member records resolved from the crew registry.
type CrewAssignmentDetails struct {
	FlightNumber string       `json:"flight_number"`
	Date         string       `json:"date"`
	Pilot        CrewMember   `json:"pilot"`
	CoPilot      CrewMember   `json:"co_pilot"`
	CabinCrew    []CrewMember `json:"cabin_crew"`
}
