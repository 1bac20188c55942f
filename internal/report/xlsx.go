// Package report renders the report aggregate as a spreadsheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/notarydesk/priorities/internal/biz/projection"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Prioridades"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var Headers = []string{"Colaborador", "Cargo", "Posição", "Prioridade", "Descrição", "Cor"}

// FileName is the suggested download name of a workbook built at t.
func FileName(t time.Time) string {
	return "relatorio-prioridades-" + t.Format("2006-01-02") + ".xlsx"
}

// Build lays out one row per ranked entry. An employee with no priorities
// still gets a row, with the priority columns left blank.
func Build(r *projection.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, header := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, ranking := range r.Rows {
		if len(ranking.Priorities) == 0 {
			if err := setRow(f, row, ranking.Employee.FullName, ranking.Employee.Position); err != nil {
				return nil, err
			}
			row++
			continue
		}
		for _, rp := range ranking.Priorities {
			err := setRow(f, row,
				ranking.Employee.FullName,
				ranking.Employee.Position,
				rp.Rank,
				rp.Priority.Name,
				rp.Priority.Description,
				rp.Priority.Color.Name(),
			)
			if err != nil {
				return nil, err
			}
			row++
		}
	}
	return f, nil
}

// Write builds the workbook for r and streams it to w.
func Write(w io.Writer, r *projection.Report) error {
	f, err := Build(r)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}
