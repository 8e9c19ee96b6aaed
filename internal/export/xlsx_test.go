package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"prodtrack/internal/departments"
	"prodtrack/internal/orders"
	"prodtrack/internal/products"
)

func readSheet(t *testing.T, buf *bytes.Buffer, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestOrdersExport(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	eff := 87.5
	items := []orders.Order{
		{
			ID: 7, OrderNumber: "ORD-2026-007", ProductID: 3, DepartmentID: 2,
			Quantity: 40, Status: orders.StatusInProgress, Priority: orders.PriorityHigh,
			DueDate: &due, EfficiencyPercentage: &eff,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Orders(&buf, items, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	rows := readSheet(t, &buf, "Orders")
	require.Len(t, rows, 2)
	assert.Equal(t, "Order Number", rows[0][1])
	assert.Equal(t, "ORD-2026-007", rows[1][1])
	assert.Equal(t, "In Progress", rows[1][5])
	assert.Equal(t, "2026-03-01", rows[1][7])
	// past due and still in progress
	assert.Equal(t, "true", rows[1][8])
	assert.Equal(t, "87.50", rows[1][9])
}

func TestProductsExportNilFields(t *testing.T) {
	items := []products.Product{
		{ID: 1, ItemNumber: "ABC-001", IsActive: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Products(&buf, items))

	rows := readSheet(t, &buf, "Products")
	require.Len(t, rows, 2)
	assert.Equal(t, "ABC-001", rows[1][1])
	// nil description and category render as empty cells
	if len(rows[1]) > 2 {
		assert.Empty(t, rows[1][2])
	}
}

func TestDepartmentsExport(t *testing.T) {
	order := 3
	color := "#1976d2"
	items := []departments.Department{
		{ID: 4, Code: "ASM", Name: "Assembly", DisplayOrder: &order, Color: &color, IsActive: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Departments(&buf, items))

	rows := readSheet(t, &buf, "Departments")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Code", "Name", "Display Order", "Color", "Active"}, rows[0])
	assert.Equal(t, "ASM", rows[1][1])
	assert.Equal(t, "3", rows[1][3])
	assert.Equal(t, "#1976d2", rows[1][4])
	assert.Equal(t, "true", rows[1][5])
}
