package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"prodtrack/internal/api"
	"prodtrack/internal/export"
	"prodtrack/internal/products"
)

func (a *app) productsCommand() *cli.Command {
	return &cli.Command{
		Name:    "products",
		Aliases: []string{"prod"},
		Usage:   "manage products",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list products",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "category", Usage: "category code (AAA..H)"},
					&cli.BoolFlag{Name: "active"},
					&cli.BoolFlag{Name: "inactive"},
					&cli.StringFlag{Name: "export", Usage: "write results to this xlsx file"},
				),
				Action: func(c *cli.Context) error {
					if cat := c.String("category"); cat != "" && !products.ValidCategoryCode(cat) {
						return fmt.Errorf("unknown category %q (valid: %v)", cat, products.CategoryCodes)
					}
					res, err := a.queries.Products.List(c.Context, api.ProductFilter{
						Search:       c.String("search"),
						CategoryCode: c.String("category"),
						IsActive:     triBool(c, "active", "inactive"),
						Page:         pageParams(c),
					})
					if err != nil {
						return friendly(err)
					}
					if out := c.String("export"); out != "" {
						return exportProducts(out, res.Items)
					}
					renderProducts(res.Items)
					pageFooter(res.Total, res.Page, res.TotalPages())
					return nil
				},
			},
			{
				Name:  "active",
				Usage: "list active products",
				Flags: []cli.Flag{&cli.IntFlag{Name: "limit", Value: 100}},
				Action: func(c *cli.Context) error {
					items, err := a.queries.Products.Active(c.Context, c.Int("limit"))
					if err != nil {
						return friendly(err)
					}
					renderProducts(items)
					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "typeahead search: search <term>",
				ArgsUsage: "<term>",
				Flags:     []cli.Flag{&cli.IntFlag{Name: "limit", Value: 10}},
				Action: func(c *cli.Context) error {
					term := c.Args().First()
					if term == "" {
						return fmt.Errorf("missing search term")
					}
					items, err := a.queries.Products.Search(c.Context, term, c.Int("limit"))
					if err != nil {
						return friendly(err)
					}
					renderProducts(items)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "show one product by id or --number",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Usage: "look up by item number"},
				},
				Action: func(c *cli.Context) error {
					var (
						p   products.Product
						err error
					)
					if num := c.String("number"); num != "" {
						p, err = a.queries.Products.GetByNumber(c.Context, num)
					} else {
						var id int
						if id, err = argID(c); err != nil {
							return err
						}
						p, err = a.queries.Products.Get(c.Context, id)
					}
					if err != nil {
						return friendly(err)
					}
					renderProducts([]products.Product{p})
					if p.Category != nil {
						fmt.Printf("category multiplier: %.2f\n", p.Category.EfficiencyMultiplier)
					}
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Required: true, Usage: "item number"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "category", Usage: "category code (AAA..H)"},
					&cli.Float64Flag{Name: "std-minutes", Usage: "standard time in minutes"},
				},
				Action: func(c *cli.Context) error {
					if cat := c.String("category"); cat != "" && !products.ValidCategoryCode(cat) {
						return fmt.Errorf("unknown category %q (valid: %v)", cat, products.CategoryCodes)
					}
					p, err := a.queries.Products.Create(c.Context, products.CreateProduct{
						ItemNumber:          c.String("number"),
						Description:         strPtr(c, "description"),
						CategoryCode:        strPtr(c, "category"),
						StandardTimeMinutes: floatPtr(c, "std-minutes"),
					})
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("created product %d (%s)\n", p.ID, p.ItemNumber)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update a product: update <id> [flags]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "category"},
					&cli.Float64Flag{Name: "std-minutes"},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					p, err := a.queries.Products.Update(c.Context, id, products.UpdateProduct{
						ItemNumber:          strPtr(c, "number"),
						Description:         strPtr(c, "description"),
						CategoryCode:        strPtr(c, "category"),
						StandardTimeMinutes: floatPtr(c, "std-minutes"),
					})
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("updated product %d\n", p.ID)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete a product",
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					if err := a.queries.Products.Delete(c.Context, id); err != nil {
						return friendly(err)
					}
					fmt.Printf("deleted product %d\n", id)
					return nil
				},
			},
			{
				Name:   "activate",
				Usage:  "mark a product active",
				Action: a.productToggle(true),
			},
			{
				Name:   "deactivate",
				Usage:  "mark a product inactive",
				Action: a.productToggle(false),
			},
			{
				Name:  "stats",
				Usage: "product totals",
				Action: func(c *cli.Context) error {
					s, err := a.queries.Products.Stats(c.Context)
					if err != nil {
						return friendly(err)
					}
					fmt.Printf("products: %d total, %d active, %d inactive\n", s.Total, s.Active, s.Inactive)
					return nil
				},
			},
		},
	}
}

func (a *app) productToggle(active bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := argID(c)
		if err != nil {
			return err
		}
		var p products.Product
		if active {
			p, err = a.queries.Products.Activate(c.Context, id)
		} else {
			p, err = a.queries.Products.Deactivate(c.Context, id)
		}
		if err != nil {
			return friendly(err)
		}
		fmt.Printf("product %d (%s) active=%t\n", p.ID, p.ItemNumber, p.IsActive)
		return nil
	}
}

func exportProducts(path string, items []products.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.Products(f, items); err != nil {
		return err
	}
	fmt.Printf("wrote %d products to %s\n", len(items), path)
	return nil
}
