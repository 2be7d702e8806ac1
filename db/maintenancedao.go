package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"airline-ops-server/model"
)

type MaintenanceDAO struct {
	db *gorm.DB
}

func NewMaintenanceDAO(db *gorm.DB) *MaintenanceDAO {
	return &MaintenanceDAO{db: db}
}

func (maintenanceDAO *MaintenanceDAO) CreateJob(aircraftRegistration, jobType, remarks string) (model.MaintenanceJob, error) {
	if aircraftRegistration == "" {
		return model.MaintenanceJob{}, model.NewValidationError("aircraft registration is required")
	}
	if !model.IsValidJobType(jobType) {
		return model.MaintenanceJob{}, model.NewValidationError("invalid job type: " + jobType)
	}

	// the aircraft must be known fleet data
	aircraftDAO := NewAircraftDAO(maintenanceDAO.db)
	_, err := aircraftDAO.GetAircraftByRegistration(aircraftRegistration)
	if err != nil {
		var notFound *model.NotFoundError
		if errors.As(err, &notFound) {
			return model.MaintenanceJob{}, model.NewValidationError("aircraft " + aircraftRegistration + " does not exist")
		}
		return model.MaintenanceJob{}, err
	}

	job := model.MaintenanceJob{
		AircraftRegistration: aircraftRegistration,
		JobType:              jobType,
		Status:               model.JobStatusPending,
		CheckinTime:          time.Now(),
		Remarks:              remarks,
	}
	result := maintenanceDAO.db.Create(&job)
	if result.Error != nil {
		return model.MaintenanceJob{}, result.Error
	}

	return job, nil
}

func (maintenanceDAO *MaintenanceDAO) GetJobById(jobID int) (model.MaintenanceJob, error) {
	var job model.MaintenanceJob
	result := maintenanceDAO.db.First(&job, jobID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.MaintenanceJob{}, model.NewNotFoundError(fmt.Sprintf("job %d not found", jobID))
		}
		return model.MaintenanceJob{}, result.Error
	}

	// inject engineers, not stored on the job row
	err := maintenanceDAO.injectEngineers(&job)
	if err != nil {
		return model.MaintenanceJob{}, err
	}

	return job, nil
}

func (maintenanceDAO *MaintenanceDAO) GetJobs() ([]model.MaintenanceJob, error) {
	var jobs []model.MaintenanceJob
	result := maintenanceDAO.db.Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range jobs {
		err := maintenanceDAO.injectEngineers(&jobs[i])
		if err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// GetJobsByEngineerEmail returns every job the engineer was ever assigned
// to, including closed ones.
func (maintenanceDAO *MaintenanceDAO) GetJobsByEngineerEmail(email string) ([]model.MaintenanceJob, error) {
	var assignments []model.JobEngineer
	result := maintenanceDAO.db.Where("email = ?", email).Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	seen := map[int]bool{}
	var jobs []model.MaintenanceJob
	for _, assignment := range assignments {
		if seen[assignment.JobID] {
			continue
		}
		seen[assignment.JobID] = true

		job, err := maintenanceDAO.GetJobById(assignment.JobID)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (maintenanceDAO *MaintenanceDAO) injectEngineers(job *model.MaintenanceJob) error {
	var engineers []model.JobEngineer
	result := maintenanceDAO.db.Where("id_job = ?", job.JobID).Order("id_assignment").Find(&engineers)
	if result.Error != nil {
		return result.Error
	}
	job.Engineers = engineers
	return nil
}

// lockOpenJob loads a job inside the transaction and rejects the operation
// when the job has already reached a terminal status.
func lockOpenJob(transaction *gorm.DB, jobID int) (model.MaintenanceJob, error) {
	var job model.MaintenanceJob
	result := transaction.First(&job, jobID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.MaintenanceJob{}, model.NewNotFoundError(fmt.Sprintf("job %d not found", jobID))
		}
		return model.MaintenanceJob{}, result.Error
	}
	if model.IsJobClosed(job.Status) {
		return model.MaintenanceJob{}, model.NewStateError(fmt.Sprintf("job %d is closed", jobID))
	}
	return job, nil
}

// StartJob moves a pending job to in_progress.
func (maintenanceDAO *MaintenanceDAO) StartJob(jobID int) (model.MaintenanceJob, error) {
	// create transaction
	transaction := maintenanceDAO.db.Begin()
	if transaction.Error != nil {
		return model.MaintenanceJob{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	job, err := lockOpenJob(transaction, jobID)
	if err != nil {
		transaction.Rollback()
		return model.MaintenanceJob{}, err
	}
	if job.Status != model.JobStatusPending {
		transaction.Rollback()
		return model.MaintenanceJob{}, model.NewStateError(fmt.Sprintf("job %d is already in progress", jobID))
	}

	job.Status = model.JobStatusInProgress
	result := transaction.Save(&job)
	if result.Error != nil {
		return model.MaintenanceJob{}, result.Error
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.MaintenanceJob{}, result.Error
	}

	err = maintenanceDAO.injectEngineers(&job)
	if err != nil {
		return model.MaintenanceJob{}, err
	}

	return job, nil
}

// AssignEngineers appends engineers to an open job. Rows are not
// deduplicated: the same email may be added again under another role.
func (maintenanceDAO *MaintenanceDAO) AssignEngineers(jobID int, engineers []model.JobEngineer) (model.MaintenanceJob, error) {
	if len(engineers) == 0 {
		return model.MaintenanceJob{}, model.NewValidationError("at least one engineer is required")
	}
	for _, engineer := range engineers {
		if engineer.Email == "" {
			return model.MaintenanceJob{}, model.NewValidationError("engineer email is required")
		}
	}

	// create transaction
	transaction := maintenanceDAO.db.Begin()
	if transaction.Error != nil {
		return model.MaintenanceJob{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	job, err := lockOpenJob(transaction, jobID)
	if err != nil {
		transaction.Rollback()
		return model.MaintenanceJob{}, err
	}

	for i := range engineers {
		engineers[i].AssignmentID = 0
		engineers[i].JobID = jobID
		result := transaction.Create(&engineers[i])
		if result.Error != nil {
			return model.MaintenanceJob{}, result.Error
		}
	}

	result := transaction.Commit()
	if result.Error != nil {
		return model.MaintenanceJob{}, result.Error
	}

	err = maintenanceDAO.injectEngineers(&job)
	if err != nil {
		return model.MaintenanceJob{}, err
	}

	return job, nil
}

// CloseJob completes a job: checkout is stamped and the transition is
// one-way, there is no reopening operation.
func (maintenanceDAO *MaintenanceDAO) CloseJob(jobID int, remarks *string) (model.MaintenanceJob, error) {
	return maintenanceDAO.closeWithStatus(jobID, model.JobStatusCompleted, remarks)
}

// CancelJob closes a job as cancelled instead of completed.
func (maintenanceDAO *MaintenanceDAO) CancelJob(jobID int, remarks *string) (model.MaintenanceJob, error) {
	return maintenanceDAO.closeWithStatus(jobID, model.JobStatusCancelled, remarks)
}

func (maintenanceDAO *MaintenanceDAO) closeWithStatus(jobID int, status string, remarks *string) (model.MaintenanceJob, error) {
	// create transaction
	transaction := maintenanceDAO.db.Begin()
	if transaction.Error != nil {
		return model.MaintenanceJob{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	job, err := lockOpenJob(transaction, jobID)
	if err != nil {
		transaction.Rollback()
		return model.MaintenanceJob{}, err
	}

	now := time.Now()
	job.Status = status
	job.CheckoutTime = &now
	if remarks != nil {
		job.Remarks = *remarks
	}

	result := transaction.Save(&job)
	if result.Error != nil {
		return model.MaintenanceJob{}, result.Error
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.MaintenanceJob{}, result.Error
	}

	err = maintenanceDAO.injectEngineers(&job)
	if err != nil {
		return model.MaintenanceJob{}, err
	}

	return job, nil
}
