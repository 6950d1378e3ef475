package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/yardops/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(report model.StatsReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Yard operations report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s - %s", report.WindowFrom, report.WindowTo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Totals", "", 1, "L", false, 0, "")
	totals := [][2]string{
		{"Tasks", fmt.Sprintf("%d", report.TotalTasks)},
		{"Loadings", fmt.Sprintf("%d", report.TotalLoadings)},
		{"Weighings", fmt.Sprintf("%d", report.TotalWeighings)},
		{"Average weight, kg", fmt.Sprintf("%.2f", report.AverageWeight)},
		{"Trucks in fleet", fmt.Sprintf("%d", report.TotalTrucks)},
		{"Drivers", fmt.Sprintf("%d", report.TotalDrivers)},
		{"Visitors today / 7d / 30d", fmt.Sprintf("%d / %d / %d", report.VisitorsToday, report.VisitorsWeek, report.VisitorsMonth)},
	}
	pdf.SetFont(g.fontName, "", 10)
	for _, row := range totals {
		pdf.CellFormat(70, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	g.writeTable(pdf, "Tasks by status", [2]string{"Status", "Tasks"}, statusRows(report))
	g.writeTable(pdf, "Top warehouses by loadings", [2]string{"Warehouse", "Loadings"}, warehouseRows(report))
	g.writeTable(pdf, "Tasks per user", [2]string{"User", "Tasks"}, userRows(report))
	g.writeTable(pdf, "Visitors per day", [2]string{"Date", "Visitors"}, visitorRows(report))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeTable(pdf *gofpdf.Fpdf, title string, headers [2]string, rows [][2]string) {
	if len(rows) == 0 {
		return
	}

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(100, 6, headers[0], "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, headers[1], "1", 1, "R", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	for _, row := range rows {
		pdf.CellFormat(100, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func statusRows(report model.StatsReport) [][2]string {
	rows := make([][2]string, 0, len(report.TasksByStatus))
	for _, row := range report.TasksByStatus {
		label := row.StatusName
		if label == "" {
			label = row.StatusID.String()
		}
		rows = append(rows, [2]string{label, fmt.Sprintf("%d", row.Count)})
	}
	return rows
}

func warehouseRows(report model.StatsReport) [][2]string {
	rows := make([][2]string, 0, len(report.TopWarehousesByLoadings))
	for _, row := range report.TopWarehousesByLoadings {
		label := row.WarehouseName
		if label == "" {
			label = row.WarehouseID.String()
		}
		rows = append(rows, [2]string{label, fmt.Sprintf("%d", row.Count)})
	}
	return rows
}

func userRows(report model.StatsReport) [][2]string {
	rows := make([][2]string, 0, len(report.TasksPerUser))
	for _, row := range report.TasksPerUser {
		label := row.UserName
		if label == "" {
			label = row.UserID.String()
		}
		rows = append(rows, [2]string{label, fmt.Sprintf("%d", row.Count)})
	}
	return rows
}

func visitorRows(report model.StatsReport) [][2]string {
	rows := make([][2]string, 0, len(report.VisitorsPerDay))
	for _, row := range report.VisitorsPerDay {
		rows = append(rows, [2]string{row.Date, fmt.Sprintf("%d", row.Count)})
	}
	return rows
}
