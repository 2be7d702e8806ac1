package model

import "time"

const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

const (
	JobTypeRoutine    = "routine"
	JobTypeInspection = "inspection"
	JobTypeRepair     = "repair"
	JobTypeOverhaul   = "overhaul"
)

type MaintenanceJob struct {
	JobID                int           `gorm:"column:id_job;primaryKey;autoIncrement" json:"job_id"`
	AircraftRegistration string        `gorm:"column:aircraft_registration;type:text;not null" json:"aircraft_registration"`
	JobType              string        `gorm:"column:job_type;type:text;not null" json:"job_type"`
	Status               string        `gorm:"column:status;type:text;not null" json:"status"`
	CheckinTime          time.Time     `gorm:"column:checkin_time;not null" json:"checkin_time"`
	CheckoutTime         *time.Time    `gorm:"column:checkout_time" json:"checkout_time"` // nil until the job is closed
	Remarks              string        `gorm:"column:remarks;type:text" json:"remarks"`
	Engineers            []JobEngineer `gorm:"-" json:"engineers"`
}

func (MaintenanceJob) TableName() string {
	return "maintenance_job"
}

// JobEngineer is one engineer assignment on a job. Rows are append-only and
// the same email may appear more than once with different roles.
type JobEngineer struct {
	AssignmentID int    `gorm:"column:id_assignment;primaryKey;autoIncrement" json:"-"`
	JobID        int    `gorm:"column:id_job;type:integer;not null" json:"-"`
	Email        string `gorm:"column:email;type:text;not null" json:"email"`
	Role         string `gorm:"column:engineer_role;type:text" json:"role"`
}

func (JobEngineer) TableName() string {
	return "job_engineer"
}

func IsValidJobType(jobType string) bool {
	return jobType == JobTypeRoutine ||
		jobType == JobTypeInspection ||
		jobType == JobTypeRepair ||
		jobType == JobTypeOverhaul
}

// IsJobClosed reports whether the status is terminal.
func IsJobClosed(status string) bool {
	return status == JobStatusCompleted || status == JobStatusCancelled
}
