package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jobcard-backend/db/models"

	"github.com/xuri/excelize/v2"
)

const exportDir = "./public/files"

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateJobCardExcel writes the job-card register to an Excel file and
// returns the saved path.
func GenerateJobCardExcel(jobCards []models.JobCard) (string, error) {
	if err := EnsureDirectoryExists(exportDir); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheetName := "Job Cards"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{
		"Job Number", "Customer", "Mobile", "Vehicle", "Registration",
		"Service", "Worker", "Payment Status", "Archived",
		"Labor", "Parts", "Lubricants", "Grand Total", "Created",
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	for row, jc := range jobCards {
		vehicle := ""
		if jc.VehicleMake != nil {
			vehicle = *jc.VehicleMake
		}
		if jc.VehicleModel != nil {
			vehicle = vehicle + " " + *jc.VehicleModel
		}
		service := ""
		if jc.ServiceSelection != nil {
			service = string(*jc.ServiceSelection)
		}
		values := []interface{}{
			jc.JobNumber,
			jc.CustomerName,
			deref(jc.CustomerMobile),
			vehicle,
			deref(jc.VehicleRegistration),
			service,
			deref(jc.AssignedWorker),
			string(jc.PaymentStatus),
			jc.IsArchived,
			jc.TotalA.StringFixed(2),
			jc.TotalB.StringFixed(2),
			jc.TotalC.StringFixed(2),
			jc.GrandTotal.StringFixed(2),
			jc.CreatedAt.Format("2006-01-02"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error setting cell %s: %v", cell, err)
			}
		}
	}

	fileName := fmt.Sprintf("job_cards_%s.xlsx", time.Now().Format("20060102_150405"))
	fullPath := filepath.Join(exportDir, fileName)
	if err := f.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("error saving excel file: %v", err)
	}

	return fullPath, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
