package payroll

import (
	"fmt"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const (
	sheetFiveDays = "Esquema 5 dias"
	sheetSixDays  = "Esquema 6 dias"
)

// exportColumns is the fixed column order consumed by accounting.
var exportColumns = []exportColumn{
	{header: "Código", value: func(l payroll.Line) any { return l.EmployeeCode }},
	{header: "Nombre", value: func(l payroll.Line) any { return l.EmployeeName }},
	{header: "Puesto", value: func(l payroll.Line) any { return l.JobName }},
	{header: "Departamento", value: func(l payroll.Line) any { return l.DepartmentName }},
	{header: "Salario diario", numeric: true, value: func(l payroll.Line) any { return l.DailySalary.InexactFloat64() }},
	{header: "Días trabajados", numeric: true, value: func(l payroll.Line) any { return l.DaysWorked }},
	{header: "Descansos pagados", numeric: true, value: func(l payroll.Line) any { return l.PaidRestDays.InexactFloat64() }},
	{header: "Total días", numeric: true, value: func(l payroll.Line) any { return l.TotalDays.InexactFloat64() }},
	{header: "Salario", numeric: true, value: func(l payroll.Line) any { return l.Salary.InexactFloat64() }},
	{header: "Horas extra", numeric: true, value: func(l payroll.Line) any { return l.ExtraHours.InexactFloat64() }},
	{header: "Pago horas extra", numeric: true, value: func(l payroll.Line) any { return l.ExtraHoursPayment.InexactFloat64() }},
	{header: "Bono puntualidad", numeric: true, value: func(l payroll.Line) any { return l.PunctualityBonus.InexactFloat64() }},
	{header: "Bono asistencia", numeric: true, value: func(l payroll.Line) any { return l.AttendanceBonus.InexactFloat64() }},
	{header: "Bono despensa", numeric: true, value: func(l payroll.Line) any { return l.GroceryBonus.InexactFloat64() }},
	{header: "Bono día festivo", numeric: true, value: func(l payroll.Line) any { return l.HolidayBonus.InexactFloat64() }},
	{header: "Bonos personalizados", numeric: true, value: func(l payroll.Line) any { return l.CustomBonusesTotal.InexactFloat64() }},
	{header: "Retardos", numeric: true, value: func(l payroll.Line) any { return l.Tardies }},
	{header: "Base gravable", numeric: true, value: func(l payroll.Line) any { return l.TaxPay.InexactFloat64() }},
	{header: "Neto a pagar", numeric: true, value: func(l payroll.Line) any { return l.NetPay.InexactFloat64() }},
}

type exportColumn struct {
	header  string
	numeric bool
	value   func(payroll.Line) any
}

// RenderWorkbook writes p into an xlsx workbook with one sheet per job scheme.
func RenderWorkbook(p payroll.Payroll) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetFiveDays); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSixDays); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("failed to create total style: %w", err)
	}

	var fiveDays, sixDays []payroll.Line
	for _, line := range p.Lines {
		if line.JobScheme == employee.SchemeFiveDays {
			fiveDays = append(fiveDays, line)
		} else {
			sixDays = append(sixDays, line)
		}
	}

	sheets := []struct {
		name  string
		lines []payroll.Line
	}{
		{name: sheetFiveDays, lines: fiveDays},
		{name: sheetSixDays, lines: sixDays},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.lines, headerStyle, totalStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, lines []payroll.Line, headerStyle, totalStyle int) error {
	headers := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		headers[i] = col.header
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(exportColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	for i, line := range lines {
		row := make([]any, len(exportColumns))
		for j, col := range exportColumns {
			row[j] = col.value(line)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	// Totals are formulas so the sheet stays recalculable. An empty sheet has
	// no data rows to sum, so its totals are written as zero.
	totalRow := len(lines) + 2
	label, _ := excelize.CoordinatesToCellName(1, totalRow)
	if err := f.SetCellValue(sheet, label, "Total"); err != nil {
		return err
	}
	for j, col := range exportColumns {
		if !col.numeric {
			continue
		}
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		cell := fmt.Sprintf("%s%d", name, totalRow)
		if len(lines) == 0 {
			if err := f.SetCellValue(sheet, cell, 0); err != nil {
				return fmt.Errorf("failed to write total: %w", err)
			}
			continue
		}
		formula := fmt.Sprintf("SUM(%s2:%s%d)", name, name, totalRow-1)
		if err := f.SetCellFormula(sheet, cell, formula); err != nil {
			return fmt.Errorf("failed to write total formula: %w", err)
		}
	}
	return f.SetCellStyle(sheet, label, fmt.Sprintf("%s%d", lastCol, totalRow), totalStyle)
}

// exportFileName derives the download name from the payroll id.
func exportFileName(p payroll.Payroll) string {
	return fmt.Sprintf("nomina_%s.xlsx", p.ID)
}
