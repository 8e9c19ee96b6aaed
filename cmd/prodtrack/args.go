package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"prodtrack/internal/api"
)

func argID(c *cli.Context) (int, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("missing <id> argument")
	}
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// triBool folds --active/--inactive into the optional is_active filter.
func triBool(c *cli.Context, onFlag, offFlag string) *bool {
	if c.Bool(onFlag) {
		v := true
		return &v
	}
	if c.Bool(offFlag) {
		v := false
		return &v
	}
	return nil
}

func pageParams(c *cli.Context) api.PageParams {
	limit := c.Int("limit")
	return api.PageParams{
		Skip:  api.PageToSkip(c.Int("page"), limit),
		Limit: limit,
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Value: 1, Usage: "1-based page number"},
		&cli.IntFlag{Name: "limit", Value: 20, Usage: "items per page"},
	}
}

func parseIDs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no ids given")
	}
	return ids, nil
}

func strPtr(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}

func intPtr(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int(name)
	return &v
}

func floatPtr(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}
