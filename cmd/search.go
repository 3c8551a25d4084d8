package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/sportdb/sportdb/internal/iosearch"
	"github.com/sportdb/sportdb/pkg/catalog"
	"github.com/sportdb/sportdb/pkg/consolidate"
)

// getSearchCmd returns the search command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSearchCmd() *cobra.Command {
	var (
		detail bool
		sel    catalog.Item
	)

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog database",
		Long: `Run a shorthand query against the live catalog database.

Query patterns:
  *          list everything
  /          list all brands
  /NIKE      filter by brand prefix
  #123       filter by serial fragment
  SHOE       match a word anywhere in the title
  "SHOE "    trailing space matches whole words only
  MENS       expands to MEN'S titles (same for WOMENS, BOYS, GIRLS)

--detail drills into one consolidated row and shows its per-item
variants (colors, sizes, serials). The selection fields come from
the row being drilled into: blank fields stay unset.

Examples:
  # All hoodies
  sportdb search HOOD

  # Men's running shoes from Nike
  sportdb search "MENS RUN SHOE /NIKE"

  # Drill into a consolidated row
  sportdb search -d --title "DRI-FIT TEE (NIKE)" --brand NIKE --price 25.00`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSearch(cmd, args, detail, sel)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	searchCmd.Flags().BoolVarP(
		&detail, "detail", "d", false,
		"drill into one consolidated row (requires --title)",
	)
	searchCmd.Flags().StringVarP(
		&sel.Title, "title", "t", "",
		"drill into the consolidated row with this title",
	)
	searchCmd.Flags().StringVarP(
		&sel.Brand, "brand", "b", "",
		"brand of the selected row (drill-down)",
	)
	searchCmd.Flags().StringVarP(
		&sel.Price, "price", "p", "",
		"price of the selected row (drill-down)",
	)
	searchCmd.Flags().StringVarP(
		&sel.Color, "color", "c", "",
		"color of the selected row (drill-down)",
	)
	searchCmd.Flags().StringVarP(
		&sel.Serial, "serial", "s", "",
		"serial filter pattern of the selected row (drill-down)",
	)

	return searchCmd
}

func runSearch(
	cmd *cobra.Command,
	args []string,
	detail bool,
	sel catalog.Item,
) error {
	ctx := context.Background()

	searcher := iosearch.New(cfg)
	if err := searcher.Open(ctx); err != nil {
		return err
	}
	defer searcher.Close()

	if detail || cmd.Flags().Changed("title") {
		det, ok, err := searcher.Detail(ctx, sel)
		if err != nil {
			return err
		}
		if !ok {
			gn.Warn("Catalog is busy, try again")
			return nil
		}
		printDetail(det)
		return nil
	}

	input := strings.Join(args, " ")
	rows, ok, err := searcher.Search(ctx, input)
	if err != nil {
		return err
	}
	if !ok {
		gn.Warn("Catalog is busy, try again")
		return nil
	}
	printItems(rows)
	return nil
}

func printItems(rows []catalog.Item) {
	for _, it := range rows {
		fmt.Printf("%-16s %-52s %10s\n", it.Brand, it.Title, it.Price)
	}
	fmt.Printf("%d rows\n", len(rows))
}

func printDetail(det *consolidate.Detail) {
	for _, it := range det.Rows {
		fmt.Printf("%-16s %-44s %10s %-10s %-6s %s\n",
			it.Brand, it.Title, it.Price, it.Color, it.Size, it.Serial)
	}
	fmt.Printf("%d rows\n", len(det.Rows))
}
