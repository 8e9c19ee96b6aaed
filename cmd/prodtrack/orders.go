package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"prodtrack/internal/api"
	"prodtrack/internal/export"
	"prodtrack/internal/orders"
)

func (a *app) ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "manage production orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list orders",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "status", Usage: "pending|in_progress|completed|cancelled"},
					&cli.StringFlag{Name: "priority", Usage: "low|normal|high|urgent"},
					&cli.IntFlag{Name: "department", Usage: "filter by department id"},
					&cli.IntFlag{Name: "product", Usage: "filter by product id"},
					&cli.BoolFlag{Name: "overdue", Usage: "only overdue orders"},
					&cli.StringFlag{Name: "export", Usage: "write results to this xlsx file"},
				),
				Action: func(c *cli.Context) error {
					f := api.OrderFilter{
						Search:       c.String("search"),
						DepartmentID: c.Int("department"),
						ProductID:    c.Int("product"),
						Page:         pageParams(c),
					}
					if s := c.String("status"); s != "" {
						if !orders.ValidStatus(orders.Status(s)) {
							return fmt.Errorf("unknown status %q", s)
						}
						f.Status = orders.Status(s)
					}
					if p := c.String("priority"); p != "" {
						if !orders.ValidPriority(orders.Priority(p)) {
							return fmt.Errorf("unknown priority %q", p)
						}
						f.Priority = orders.Priority(p)
					}
					if c.Bool("overdue") {
						v := true
						f.Overdue = &v
					}
					res, err := a.queries.Orders.List(c.Context, f)
					if err != nil {
						return friendly(err)
					}
					if out := c.String("export"); out != "" {
						return exportOrders(out, res.Items)
					}
					renderOrders(res.Items, time.Now())
					pageFooter(res.Total, res.Page, res.TotalPages())
					return nil
				},
			},
			{
				Name:  "active",
				Usage: "list pending and in-progress orders",
				Flags: []cli.Flag{&cli.IntFlag{Name: "limit", Value: 100}},
				Action: func(c *cli.Context) error {
					items, err := a.queries.Orders.Active(c.Context, c.Int("limit"))
					if err != nil {
						return friendly(err)
					}
					renderOrders(items, time.Now())
					return nil
				},
			},
			{
				Name:  "overdue",
				Usage: "list overdue orders",
				Action: func(c *cli.Context) error {
					items, err := a.queries.Orders.Overdue(c.Context)
					if err != nil {
						return friendly(err)
					}
					renderOrders(items, time.Now())
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "show one order by id or --number",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Usage: "look up by order number"},
					&cli.BoolFlag{Name: "details", Usage: "expand product and department"},
				},
				Action: func(c *cli.Context) error {
					if num := c.String("number"); num != "" {
						o, err := a.queries.Orders.GetByNumber(c.Context, num)
						if err != nil {
							return friendly(err)
						}
						renderOrders([]orders.Order{o}, time.Now())
						return nil
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					if c.Bool("details") {
						o, err := a.queries.Orders.GetWithDetails(c.Context, id)
						if err != nil {
							return friendly(err)
						}
						renderOrders([]orders.Order{o.Order}, time.Now())
						fmt.Printf("product %s, department %s (%s)\n",
							o.Product.ItemNumber, o.Department.Name, o.Department.Code)
						return nil
					}
					o, err := a.queries.Orders.Get(c.Context, id)
					if err != nil {
						return friendly(err)
					}
					renderOrders([]orders.Order{o}, time.Now())
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create an order",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Required: true, Usage: "order number"},
					&cli.IntFlag{Name: "product", Required: true, Usage: "product id"},
					&cli.IntFlag{Name: "department", Required: true, Usage: "department id"},
					&cli.IntFlag{Name: "quantity", Required: true},
					&cli.StringFlag{Name: "priority", Value: string(orders.PriorityNormal)},
					&cli.TimestampFlag{Name: "due", Layout: "2006-01-02", Usage: "due date"},
					&cli.StringFlag{Name: "notes"},
				},
				Action: func(c *cli.Context) error {
					if c.Int("quantity") < 1 {
						return fmt.Errorf("quantity must be at least 1")
					}
					prio := orders.Priority(c.String("priority"))
					if !orders.ValidPriority(prio) {
						return fmt.Errorf("unknown priority %q", prio)
					}
					o, err := a.queries.Orders.Create(c.Context, orders.CreateOrder{
						OrderNumber:  c.String("number"),
						ProductID:    c.Int("product"),
						DepartmentID: c.Int("department"),
						Quantity:     c.Int("quantity"),
						Priority:     prio,
						DueDate:      c.Timestamp("due"),
						Notes:        strPtr(c, "notes"),
					})
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("created order %d (%s)\n", o.ID, o.OrderNumber)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update an order: update <id> [flags] (completed orders are read-only)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number"},
					&cli.IntFlag{Name: "product"},
					&cli.IntFlag{Name: "department"},
					&cli.IntFlag{Name: "quantity"},
					&cli.StringFlag{Name: "priority"},
					&cli.TimestampFlag{Name: "due", Layout: "2006-01-02"},
					&cli.StringFlag{Name: "notes"},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					cur, err := a.queries.Orders.Get(c.Context, id)
					if err != nil {
						return friendly(err)
					}
					if orders.IsTerminal(cur.Status) {
						return fmt.Errorf("order %d is %s and no longer editable", id, cur.Status)
					}
					upd := orders.UpdateOrder{
						OrderNumber:  strPtr(c, "number"),
						ProductID:    intPtr(c, "product"),
						DepartmentID: intPtr(c, "department"),
						Quantity:     intPtr(c, "quantity"),
						DueDate:      c.Timestamp("due"),
						Notes:        strPtr(c, "notes"),
					}
					if c.IsSet("priority") {
						prio := orders.Priority(c.String("priority"))
						if !orders.ValidPriority(prio) {
							return fmt.Errorf("unknown priority %q", prio)
						}
						upd.Priority = &prio
					}
					o, err := a.queries.Orders.Update(c.Context, id, upd)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("updated order %d\n", o.ID)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete an order",
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					if err := a.queries.Orders.Delete(c.Context, id); err != nil {
						return friendly(err)
					}
					fmt.Printf("deleted order %d\n", id)
					return nil
				},
			},
			{
				Name:  "start",
				Usage: "begin work on a pending order",
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					o, err := a.queries.Orders.Start(c.Context, id)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("order %d is now %s\n", o.ID, o.Status)
					return nil
				},
			},
			{
				Name:  "complete",
				Usage: "finish an in-progress order",
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					o, err := a.queries.Orders.Complete(c.Context, id)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("order %d completed", o.ID)
					if o.EfficiencyPercentage != nil {
						fmt.Printf(" (efficiency %.1f%%)", *o.EfficiencyPercentage)
					}
					fmt.Println()
					return nil
				},
			},
			{
				Name:  "cancel",
				Usage: "cancel a pending or in-progress order",
				Flags: []cli.Flag{&cli.StringFlag{Name: "reason"}},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					o, err := a.queries.Orders.Cancel(c.Context, id, c.String("reason"))
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("order %d cancelled\n", o.ID)
					return nil
				},
			},
			{
				Name:  "reopen",
				Usage: "move a cancelled order back to pending",
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					o, err := a.queries.Orders.Reopen(c.Context, id)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("order %d is now %s\n", o.ID, o.Status)
					return nil
				},
			},
			{
				Name:  "bulk-status",
				Usage: "set one status on many orders: bulk-status --ids 1,2,3 --status completed",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ids", Required: true, Usage: "comma-separated order ids"},
					&cli.StringFlag{Name: "status", Required: true},
				},
				Action: func(c *cli.Context) error {
					ids, err := parseIDs(c.String("ids"))
					if err != nil {
						return err
					}
					status := orders.Status(c.String("status"))
					if !orders.ValidStatus(status) {
						return fmt.Errorf("unknown status %q", status)
					}
					updated, err := a.queries.Orders.BulkUpdateStatus(c.Context, ids, status)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("updated %d orders to %s\n", len(updated), status)
					return nil
				},
			},
			{
				Name:  "bulk-delete",
				Usage: "delete many orders: bulk-delete --ids 1,2,3",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ids", Required: true, Usage: "comma-separated order ids"},
				},
				Action: func(c *cli.Context) error {
					ids, err := parseIDs(c.String("ids"))
					if err != nil {
						return err
					}
					if err := a.queries.Orders.BulkDelete(c.Context, ids); err != nil {
						return friendly(err)
					}
					fmt.Printf("deleted %d orders\n", len(ids))
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "order statistics (server-aggregated)",
				Action: func(c *cli.Context) error {
					s, err := a.queries.Orders.Stats(c.Context)
					if err != nil {
						return friendly(err)
					}
					renderOrderStats(s)
					return nil
				},
			},
		},
	}
}

func exportOrders(path string, items []orders.Order) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.Orders(f, items, time.Now()); err != nil {
		return err
	}
	fmt.Printf("wrote %d orders to %s\n", len(items), path)
	return nil
}
