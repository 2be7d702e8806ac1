package model

type CrewMember struct {
	Email   string `gorm:"column:email;primaryKey" json:"email"`
	Name    string `gorm:"column:name;type:text;not null" json:"name"`
	Phone   string `gorm:"column:phone;type:text" json:"phone"`
	IsPilot bool   `gorm:"column:is_pilot;not null" json:"is_pilot"`
}

func (CrewMember) TableName() string {
	return "crew_member"
}
