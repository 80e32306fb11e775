package member

import (
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Members"

// ExportFilename is the attachment name of the member workbook
const ExportFilename = "members.xlsx"

// BuildWorkbook renders members and their access flags as an XLSX file
func BuildWorkbook(members []Member) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	columns := []string{"Username", "Password"}
	for _, flag := range AllFlags {
		columns = append(columns, flag.Label())
	}
	columns = append(columns, "Created At", "Updated At")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, col)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for rowIdx, m := range members {
		row := []interface{}{m.Username, m.Password}
		for _, flag := range AllFlags {
			if m.Access.Get(flag) {
				row = append(row, "Yes")
			} else {
				row = append(row, "No")
			}
		}
		row = append(row,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
			m.UpdatedAt.Format("2006-01-02 15:04:05"),
		)

		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
