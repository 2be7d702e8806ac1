package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"airline-ops-server/model"
)

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{db: db}
}

func (reportDAO *ReportDAO) CreateReport(report model.Report) (model.Report, error) {
	if report.Title == "" {
		return model.Report{}, model.NewValidationError("report title is required")
	}

	// the linked job is optional, but must exist when given
	if report.JobID != nil {
		maintenanceDAO := NewMaintenanceDAO(reportDAO.db)
		_, err := maintenanceDAO.GetJobById(*report.JobID)
		if err != nil {
			var notFound *model.NotFoundError
			if errors.As(err, &notFound) {
				return model.Report{}, model.NewValidationError(fmt.Sprintf("job %d does not exist", *report.JobID))
			}
			return model.Report{}, err
		}
	}

	report.CreatedAt = time.Now()
	result := reportDAO.db.Create(&report)
	if result.Error != nil {
		return model.Report{}, result.Error
	}

	return report, nil
}

func (reportDAO *ReportDAO) GetReports() ([]model.Report, error) {
	var reports []model.Report
	result := reportDAO.db.Order("created_at desc").Find(&reports)
	return reports, result.Error
}

func (reportDAO *ReportDAO) GetReportById(reportID int) (model.Report, error) {
	var report model.Report
	result := reportDAO.db.First(&report, reportID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Report{}, model.NewNotFoundError(fmt.Sprintf("report %d not found", reportID))
		}
		return model.Report{}, result.Error
	}
	return report, nil
}
