package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"prodtrack/internal/api"
	"prodtrack/internal/departments"
	"prodtrack/internal/orders"
	"prodtrack/internal/products"
)

// friendly maps the transport error taxonomy onto user-facing messages:
// server validation messages verbatim, connectivity as a retry hint, auth as
// a login hint.
func friendly(err error) error {
	var apiErr *api.APIError
	switch {
	case api.IsUnauthorized(err):
		return errors.New("not authenticated: run `prodtrack login`")
	case api.IsConnError(err):
		return errors.New("could not reach the server, check your connection and try again")
	case errors.As(err, &apiErr):
		return errors.New(apiErr.Detail)
	default:
		return err
	}
}

func table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func pageFooter(total, page, totalPages int) {
	fmt.Printf("\n%d total, page %d/%d\n", total, page, totalPages)
}

func renderOrders(items []orders.Order, now time.Time) {
	rows := make([][]string, 0, len(items))
	for _, o := range items {
		due := ""
		if o.DueDate != nil {
			due = o.DueDate.Format("2006-01-02")
			if o.IsOverdue(now) {
				due += " (overdue)"
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			o.OrderNumber,
			o.Status.Describe().Label,
			o.Priority.Describe().Label,
			strconv.Itoa(o.Quantity),
			due,
			optFloat(o.EfficiencyPercentage),
		})
	}
	table([]string{"ID", "NUMBER", "STATUS", "PRIORITY", "QTY", "DUE", "EFF%"}, rows)
}

func renderProducts(items []products.Product) {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.ItemNumber,
			optStr(p.CategoryCode),
			optFloat(p.StandardTimeMinutes),
			activeLabel(p.IsActive),
			optStr(p.Description),
		})
	}
	table([]string{"ID", "ITEM", "CAT", "STD MIN", "ACTIVE", "DESCRIPTION"}, rows)
}

func renderDepartments(items []departments.Department) {
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		order := "-"
		if d.DisplayOrder != nil {
			order = strconv.Itoa(*d.DisplayOrder)
		}
		rows = append(rows, []string{
			strconv.Itoa(d.ID),
			d.Code,
			d.Name,
			order,
			activeLabel(d.IsActive),
		})
	}
	table([]string{"ID", "CODE", "NAME", "ORDER", "ACTIVE"}, rows)
}

func renderOrderStats(s orders.Stats) {
	fmt.Printf("orders: %d total, %d overdue\n", s.Total, s.OverdueCount)
	for _, st := range []orders.Status{orders.StatusPending, orders.StatusInProgress, orders.StatusCompleted, orders.StatusCancelled} {
		fmt.Printf("  %-12s %d\n", st.Describe().Label, s.ByStatus[st])
	}
	for _, p := range []orders.Priority{orders.PriorityLow, orders.PriorityNormal, orders.PriorityHigh, orders.PriorityUrgent} {
		fmt.Printf("  %-12s %d\n", p.Describe().Label, s.ByPriority[p])
	}
	if s.AvgEfficiency != nil {
		fmt.Printf("  avg efficiency %.1f%%\n", *s.AvgEfficiency)
	}
}

func optStr(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func optFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', 1, 64)
}

func activeLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
