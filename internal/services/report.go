package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"alfredoptarigan/hr-helper/internal/models"
)

const reportSheet = "Kandidat Diterima"

// reportHeaders must stay in this order; downstream spreadsheets rely on it.
var reportHeaders = []string{
	"Posisi",
	"Nama",
	"Email",
	"Telepon",
	"LinkedIn",
	"GitHub",
	"Instagram",
	"Skor",
	"Hard Skills",
	"Soft Skills",
	"Pendidikan",
	"Pengalaman Kerja (Thn)",
}

type ReportService interface {
	// AcceptedXLSX renders one row per candidate. It returns nil when there
	// are no candidates.
	AcceptedXLSX(jobTitle string, candidates []models.Candidate) ([]byte, error)
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

func (s *reportService) AcceptedXLSX(jobTitle string, candidates []models.Candidate) ([]byte, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	for i, h := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, c := range candidates {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reportSheet, cell, &[]interface{}{
			jobTitle,
			orNoValue(c.Name),
			orNoValue(c.Email),
			orNoValue(c.Phone),
			orNoValue(c.LinkedIn),
			orNoValue(c.GitHub),
			orNoValue(c.Instagram),
			FormatPercent(c.Scores.Final),
			strings.Join(c.HardSkills, ", "),
			strings.Join(c.SoftSkills, ", "),
			models.EducationLabel(c.EducationScore),
			c.WorkExp,
		}); err != nil {
			return nil, fmt.Errorf("failed to write row for %s: %w", c.ID, err)
		}
	}

	_ = f.SetColWidth(reportSheet, "A", "B", 24)
	_ = f.SetColWidth(reportSheet, "C", "G", 32)
	_ = f.SetColWidth(reportSheet, "I", "J", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatPercent renders a [0,1] score as a whole percentage, e.g. "68%".
func FormatPercent(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

func orNoValue(s string) string {
	if s == "" {
		return models.NoValue
	}
	return s
}
