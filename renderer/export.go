package renderer

import (
	"fmt"

	"github.com/etnz/portfolio-lots"
	"github.com/etnz/portfolio-lots/date"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	CompositionSheet = "Composition"
	HistorySheet     = "History"
)

// ExportXLSX builds a workbook with the composition of the portfolio on a day,
// valued with d when available, and its value history.
func ExportXLSX(p *portfolio.Portfolio, on date.Date, d map[string]portfolio.Money, points []portfolio.ValuePoint) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("closing workbook")
		}
	}()

	if err := fillComposition(f, p, on, d); err != nil {
		return nil, err
	}
	if err := fillHistory(f, points); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func fillComposition(f *excelize.File, p *portfolio.Portfolio, on date.Date, d map[string]portfolio.Money) error {
	index, err := f.NewSheet(CompositionSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	_ = f.SetCellStr(CompositionSheet, "A1", p.Name())
	_ = f.SetCellStr(CompositionSheet, "B1", on.String())
	_ = f.SetCellStr(CompositionSheet, "A2", "Symbol")
	_ = f.SetCellStr(CompositionSheet, "B2", "Quantity")
	_ = f.SetCellStr(CompositionSheet, "C2", "Value")
	_ = f.SetCellStr(CompositionSheet, "D2", "Currency")
	if err := f.SetCellStyle(CompositionSheet, "A2", "D2", header); err != nil {
		return err
	}

	c := p.Composition(on)
	row := 3
	for _, symbol := range p.Holdings().Symbols() {
		q, ok := c[symbol]
		if !ok {
			continue
		}
		_ = f.SetCellStr(CompositionSheet, cell("A", row), symbol)
		_ = f.SetCellValue(CompositionSheet, cell("B", row), q.Float())
		if v, ok := d[symbol]; ok {
			_ = f.SetCellValue(CompositionSheet, cell("C", row), v.Float())
			_ = f.SetCellStr(CompositionSheet, cell("D", row), v.Currency())
		}
		row++
	}
	return nil
}

func fillHistory(f *excelize.File, points []portfolio.ValuePoint) error {
	if _, err := f.NewSheet(HistorySheet); err != nil {
		return err
	}
	_ = f.SetCellStr(HistorySheet, "A1", "Date")
	_ = f.SetCellStr(HistorySheet, "B1", "Value")
	for i, point := range points {
		row := i + 2
		_ = f.SetCellStr(HistorySheet, cell("A", row), point.Date.String())
		_ = f.SetCellValue(HistorySheet, cell("B", row), point.Value.InexactFloat64())
	}
	return nil
}

func cell(column string, row int) string { return fmt.Sprintf("%s%d", column, row) }
