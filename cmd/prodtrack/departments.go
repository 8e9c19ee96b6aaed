package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"prodtrack/internal/api"
	"prodtrack/internal/departments"
	"prodtrack/internal/export"
)

func (a *app) departmentsCommand() *cli.Command {
	return &cli.Command{
		Name:    "departments",
		Aliases: []string{"dept"},
		Usage:   "manage departments",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list departments",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "search", Usage: "match code or name"},
					&cli.BoolFlag{Name: "active", Usage: "only active"},
					&cli.BoolFlag{Name: "inactive", Usage: "only inactive"},
					&cli.StringFlag{Name: "export", Usage: "write results to this xlsx file"},
				),
				Action: func(c *cli.Context) error {
					res, err := a.queries.Departments.List(c.Context, api.DepartmentFilter{
						Search:   c.String("search"),
						IsActive: triBool(c, "active", "inactive"),
						Page:     pageParams(c),
					})
					if err != nil {
						return friendly(err)
					}
					if out := c.String("export"); out != "" {
						return exportDepartments(out, res.Items)
					}
					items := append([]departments.Department(nil), res.Items...)
					departments.SortByDisplayOrder(items)
					renderDepartments(items)
					pageFooter(res.Total, res.Page, res.TotalPages())
					return nil
				},
			},
			{
				Name:  "active",
				Usage: "list active departments in display order",
				Action: func(c *cli.Context) error {
					items, err := a.queries.Departments.Active(c.Context)
					if err != nil {
						return friendly(err)
					}
					renderDepartments(items)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "show one department by id or --code",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code", Usage: "look up by code instead of id"},
					&cli.BoolFlag{Name: "stats", Usage: "include per-department stats"},
				},
				Action: func(c *cli.Context) error {
					if code := c.String("code"); code != "" {
						d, err := a.queries.Departments.GetByCode(c.Context, code)
						if err != nil {
							return friendly(err)
						}
						renderDepartments([]departments.Department{d})
						return nil
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					if c.Bool("stats") {
						d, err := a.queries.Departments.GetWithStats(c.Context, id)
						if err != nil {
							return friendly(err)
						}
						renderDepartments([]departments.Department{d.Department})
						fmt.Printf("work phases: %d, active orders: %d\n", d.WorkPhaseCount, d.ActiveOrdersCount)
						return nil
					}
					d, err := a.queries.Departments.Get(c.Context, id)
					if err != nil {
						return friendly(err)
					}
					renderDepartments([]departments.Department{d})
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a department",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.IntFlag{Name: "display-order"},
					&cli.StringFlag{Name: "color", Usage: "hex color, e.g. #3B82F6"},
				},
				Action: func(c *cli.Context) error {
					d, err := a.queries.Departments.Create(c.Context, departments.CreateDepartment{
						Code:         c.String("code"),
						Name:         c.String("name"),
						DisplayOrder: intPtr(c, "display-order"),
						Color:        strPtr(c, "color"),
					})
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("created department %d (%s)\n", d.ID, d.Code)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update a department: update <id> [flags]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code"},
					&cli.StringFlag{Name: "name"},
					&cli.IntFlag{Name: "display-order"},
					&cli.StringFlag{Name: "color"},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					d, err := a.queries.Departments.Update(c.Context, id, departments.UpdateDepartment{
						Code:         strPtr(c, "code"),
						Name:         strPtr(c, "name"),
						DisplayOrder: intPtr(c, "display-order"),
						Color:        strPtr(c, "color"),
					})
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("updated department %d\n", d.ID)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "hard-delete a department (prefer deactivate)",
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					if err := a.queries.Departments.Delete(c.Context, id); err != nil {
						return friendly(err)
					}
					fmt.Printf("deleted department %d\n", id)
					return nil
				},
			},
			{
				Name:   "activate",
				Usage:  "mark a department active",
				Action: a.departmentToggle(true),
			},
			{
				Name:   "deactivate",
				Usage:  "mark a department inactive",
				Action: a.departmentToggle(false),
			},
			{
				Name:      "reorder",
				Usage:     "set display order, e.g. reorder 3=0 1=1 2=2",
				ArgsUsage: "<id>=<position> ...",
				Action: func(c *cli.Context) error {
					ordering := map[int]int{}
					for _, arg := range c.Args().Slice() {
						id, pos, ok := strings.Cut(arg, "=")
						if !ok {
							return fmt.Errorf("invalid mapping %q, want id=position", arg)
						}
						idN, err1 := strconv.Atoi(id)
						posN, err2 := strconv.Atoi(pos)
						if err1 != nil || err2 != nil {
							return fmt.Errorf("invalid mapping %q, want id=position", arg)
						}
						ordering[idN] = posN
					}
					if len(ordering) == 0 {
						return fmt.Errorf("no mappings given")
					}
					items, err := a.queries.Departments.Reorder(c.Context, ordering)
					if err != nil {
						return friendly(err)
					}
					renderDepartments(items)
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "department totals",
				Action: func(c *cli.Context) error {
					s, err := a.queries.Departments.Stats(c.Context)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("departments: %d total, %d active, %d inactive\n", s.Total, s.Active, s.Inactive)
					return nil
				},
			},
		},
	}
}

func (a *app) departmentToggle(active bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := argID(c)
		if err != nil {
			return err
		}
		var d departments.Department
		if active {
			d, err = a.queries.Departments.Activate(c.Context, id)
		} else {
			d, err = a.queries.Departments.Deactivate(c.Context, id)
		}
		if err != nil {
			return friendly(err)
		}
		fmt.Printf("department %d (%s) active=%t\n", d.ID, d.Code, d.IsActive)
		return nil
	}
}

func exportDepartments(path string, items []departments.Department) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.Departments(f, items); err != nil {
		return err
	}
	fmt.Printf("wrote %d departments to %s\n", len(items), path)
	return nil
}
