package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var getrows = cli.Command{
	Name:  "getrows",
	Usage: "query rows from a table of the protocol server database",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "table",
			Usage:    "the name of the table to query",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "filter",
			Usage: "a FIELD,OP,VALUE triple restricting the rows; repeatable",
		},
		&cli.StringFlag{
			Name:  "filter-op",
			Usage: "how to combine multiple filters (AND or OR)",
			Value: "AND",
		},
		&cli.StringFlag{
			Name:  "order-by",
			Usage: "the field to order the rows by",
		},
		&cli.StringFlag{
			Name:  "order-dir",
			Usage: "the ordering direction (ASC or DESC)",
		},
		&cli.IntFlag{
			Name:  "start-block",
			Usage: "only return rows from blocks at or after this height",
		},
		&cli.IntFlag{
			Name:  "end-block",
			Usage: "only return rows from blocks at or before this height",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "only return rows with this status",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "the maximum number of rows to return",
			Value: 100,
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "the number of rows to skip",
		},
	},
	Action: getrowsAction,
}

func getrowsAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	filters, err := parseFilters(ctx.StringSlice("filter"))
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"limit": ctx.Int("limit"),
	}
	if len(filters) > 0 {
		args["filters"] = filters
		args["filterop"] = ctx.String("filter-op")
	}
	if orderBy := ctx.String("order-by"); orderBy != "" {
		args["order_by"] = orderBy
	}
	if orderDir := ctx.String("order-dir"); orderDir != "" {
		args["order_dir"] = orderDir
	}
	if ctx.IsSet("start-block") {
		args["start_block"] = ctx.Int("start-block")
	}
	if ctx.IsSet("end-block") {
		args["end_block"] = ctx.Int("end-block")
	}
	if status := ctx.String("status"); status != "" {
		args["status"] = status
	}
	if ctx.IsSet("offset") {
		args["offset"] = ctx.Int("offset")
	}

	result, err := svc.dispatcher.Dispatch(
		ctx.Context, "get_"+ctx.String("table"), args,
	)
	if err != nil {
		return err
	}
	return printResult(ctx, result)
}

// parseFilters turns repeated FIELD,OP,VALUE flags into the filter triples
// the protocol server expects.
func parseFilters(raw []string) ([]interface{}, error) {
	filters := make([]interface{}, 0, len(raw))
	for _, entry := range raw {
		parts := strings.SplitN(entry, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid filter %q: want FIELD,OP,VALUE", entry)
		}
		filters = append(filters, []interface{}{parts[0], parts[1], parts[2]})
	}
	return filters, nil
}
