package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Employee Code", "Employee Name", "Present", "Late", "Half Days",
	"Absent", "On Leave", "Attendance %",
}

// ExportCustomXLSX renders the custom report as a spreadsheet and returns
// the file bytes with a suggested filename.
func (s *service) ExportCustomXLSX(ctx context.Context, orgID string, req CustomRangeRequest) ([]byte, string, error) {
	report, err := s.Custom(ctx, orgID, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Attendance Report %s to %s", report.FromDate, report.ToDate))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Working days: %d", report.TotalWorkingDays))

	headerRow := 4
	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range report.Rows {
		r := headerRow + 1 + i
		values := []interface{}{
			row.EmployeeCode, row.EmployeeName, row.Present, row.Late,
			row.HalfDays, row.Absent, row.OnLeave, row.AttendancePercentage,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", report.FromDate, report.ToDate)
	return buf.Bytes(), filename, nil
}
