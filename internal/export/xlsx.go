// Package export writes listings to xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"prodtrack/internal/departments"
	"prodtrack/internal/orders"
	"prodtrack/internal/products"
)

// writeSheet lays out one header row plus data rows, bold grey header,
// fixed column width.
func writeSheet(w io.Writer, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return err
		}
	}

	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func Orders(w io.Writer, items []orders.Order, now time.Time) error {
	headers := []string{
		"ID", "Order Number", "Product ID", "Department ID", "Quantity",
		"Status", "Priority", "Due Date", "Overdue", "Efficiency %", "Notes",
	}
	rows := make([][]string, 0, len(items))
	for _, o := range items {
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			o.OrderNumber,
			strconv.Itoa(o.ProductID),
			strconv.Itoa(o.DepartmentID),
			strconv.Itoa(o.Quantity),
			o.Status.Describe().Label,
			o.Priority.Describe().Label,
			fmtTime(o.DueDate),
			strconv.FormatBool(o.IsOverdue(now)),
			fmtFloat(o.EfficiencyPercentage),
			fmtStr(o.Notes),
		})
	}
	return writeSheet(w, "Orders", headers, rows)
}

func Products(w io.Writer, items []products.Product) error {
	headers := []string{"ID", "Item Number", "Description", "Category", "Std Minutes", "Active"}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.ItemNumber,
			fmtStr(p.Description),
			fmtStr(p.CategoryCode),
			fmtFloat(p.StandardTimeMinutes),
			strconv.FormatBool(p.IsActive),
		})
	}
	return writeSheet(w, "Products", headers, rows)
}

func Departments(w io.Writer, items []departments.Department) error {
	headers := []string{"ID", "Code", "Name", "Display Order", "Color", "Active"}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		order := ""
		if d.DisplayOrder != nil {
			order = strconv.Itoa(*d.DisplayOrder)
		}
		rows = append(rows, []string{
			strconv.Itoa(d.ID),
			d.Code,
			d.Name,
			order,
			fmtStr(d.Color),
			strconv.FormatBool(d.IsActive),
		})
	}
	return writeSheet(w, "Departments", headers, rows)
}

func fmtStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *f)
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
