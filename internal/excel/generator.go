package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/yardops/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.StatsReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	if err := g.writeStatusSheet(file, report); err != nil {
		return nil, err
	}
	if err := g.writeVisitorSheet(file, report); err != nil {
		return nil, err
	}
	if err := g.writeRankingSheet(file, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.StatsReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", report.WindowFrom)
	set("A2", "Period end")
	set("B2", report.WindowTo)
	set("A3", "Tasks")
	set("B3", report.TotalTasks)
	set("A4", "Loadings")
	set("B4", report.TotalLoadings)
	set("A5", "Weighings")
	set("B5", report.TotalWeighings)
	set("A6", "Average weight, kg")
	set("B6", report.AverageWeight)
	set("A7", "Trucks in fleet")
	set("B7", report.TotalTrucks)
	set("A8", "Drivers")
	set("B8", report.TotalDrivers)
	set("A9", "Visitors today")
	set("B9", report.VisitorsToday)
	set("A10", "Visitors, 7 days")
	set("B10", report.VisitorsWeek)
	set("A11", "Visitors, 30 days")
	set("B11", report.VisitorsMonth)

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	return nil
}

func (g *Generator) writeStatusSheet(file *excelize.File, report model.StatsReport) error {
	sheet := "Tasks by status"
	file.NewSheet(sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Status")
	set("B1", "Tasks")
	for i, row := range report.TasksByStatus {
		set(fmt.Sprintf("A%d", i+2), row.StatusName)
		set(fmt.Sprintf("B%d", i+2), row.Count)
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func (g *Generator) writeVisitorSheet(file *excelize.File, report model.StatsReport) error {
	sheet := "Visitors per day"
	file.NewSheet(sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Date")
	set("B1", "Visitors")
	for i, row := range report.VisitorsPerDay {
		set(fmt.Sprintf("A%d", i+2), row.Date)
		set(fmt.Sprintf("B%d", i+2), row.Count)
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func (g *Generator) writeRankingSheet(file *excelize.File, report model.StatsReport) error {
	sheet := "Rankings"
	file.NewSheet(sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Top warehouses by loadings")
	set("A2", "Warehouse")
	set("B2", "Loadings")
	row := 3
	for _, item := range report.TopWarehousesByLoadings {
		set(fmt.Sprintf("A%d", row), warehouseLabel(item))
		set(fmt.Sprintf("B%d", row), item.Count)
		row++
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Tasks per user")
	row++
	set(fmt.Sprintf("A%d", row), "User")
	set(fmt.Sprintf("B%d", row), "Tasks")
	row++
	for _, item := range report.TasksPerUser {
		set(fmt.Sprintf("A%d", row), userLabel(item))
		set(fmt.Sprintf("B%d", row), item.Count)
		row++
	}

	_ = file.SetColWidth(sheet, "A", "A", 36)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func warehouseLabel(row model.WarehouseCount) string {
	if row.WarehouseName != "" {
		return row.WarehouseName
	}
	return row.WarehouseID.String()
}

func userLabel(row model.UserTaskCount) string {
	if row.UserName != "" {
		return row.UserName
	}
	return row.UserID.String()
}
