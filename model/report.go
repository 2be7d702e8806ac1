package model

import "time"

type Report struct {
	ReportID  int       `gorm:"column:id_report;primaryKey;autoIncrement" json:"report_id"`
	JobID     *int      `gorm:"column:id_job;type:integer" json:"job_id"` // can be nil, pointer
	Title     string    `gorm:"column:title;type:text;not null" json:"title"`
	Summary   *string   `gorm:"column:summary;type:text" json:"summary"`   // can be nil, pointer
	Findings  *string   `gorm:"column:findings;type:text" json:"findings"` // can be nil, pointer
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Report) TableName() string {
	return "report"
}
