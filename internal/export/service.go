package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/haidangnguyen/resume-tracker/internal/repository"
)

// Service is a tiny façade over the resume repository that produces XLSX
// bytes for admin exports.
type Service struct {
	repo   repository.ResumeRepository
	logger *slog.Logger
}

func NewService(repo repository.ResumeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportResumesXLSX returns an XLSX workbook (as bytes) with one row per
// non-deleted resume matching the filter.
func (s *Service) ExportResumesXLSX(ctx context.Context, f repository.ListFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}

	wb := excelize.NewFile()
	const sheet = "Resumes"
	if index, _ := wb.GetSheetIndex(sheet); index == -1 {
		if _, err := wb.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := wb.GetSheetIndex(sheet)
	wb.SetActiveSheet(activeIndex)

	headers := []string{
		"Submitted At",
		"Candidate Email",
		"Status",
		"Company",
		"Job",
		"Resume URL",
		"Last Updated",
		"Last Updated By",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = wb.SetCellValue(sheet, cell, v)
		}

		updatedBy := ""
		if r.UpdatedByEmail != nil {
			updatedBy = *r.UpdatedByEmail
		}

		write(1, r.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, r.Email)
		write(3, r.Status)
		write(4, r.CompanyID.String())
		write(5, r.JobID.String())
		write(6, r.URL)
		write(7, r.UpdatedAt.UTC().Format("2006-01-02 15:04"))
		write(8, updatedBy)

		row++
	}

	// Widen a few columns
	_ = wb.SetColWidth(sheet, "A", "A", 18) // submitted
	_ = wb.SetColWidth(sheet, "B", "B", 28) // email
	_ = wb.SetColWidth(sheet, "C", "C", 12) // status
	_ = wb.SetColWidth(sheet, "D", "E", 38) // company/job ids
	_ = wb.SetColWidth(sheet, "F", "F", 48) // url
	_ = wb.SetColWidth(sheet, "G", "H", 24)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
