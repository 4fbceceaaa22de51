package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/sheetview/internal/viewport"
)

func newNavigateCmd(opts *globalOptions) *cobra.Command {
	var (
		fragment    string
		navigations string
		asJSON      bool
		source      sheetSource
	)
	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Apply the navigations of a URL fragment and print the result",
		Example: `  sheetview navigate --fragment /home/A1/width/800/height/480/selection/B2/navigations/right,extend-down
  sheetview navigate --fragment /home/A1/width/800/height/480 --navigations "down 400px" --workbook book.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vp, err := viewport.ParseURLFragment(fragment)
			if err != nil {
				return err
			}
			if navigations != "" {
				extra, err := viewport.ParseNavigationList(navigations)
				if err != nil {
					return err
				}
				vp = vp.SetNavigations(vp.Navigations().Append(extra.All()...))
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx, _, closeSheet, err := source.open(cfg, opts.logger)
			if err != nil {
				return err
			}
			defer closeSheet()

			opts.logger.Debug("navigating", "from", vp.URLFragment())
			result := vp.Navigate(ctx)
			opts.logger.Debug("navigated", "to", result.URLFragment())

			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), result.URLFragment())
				return nil
			}
			out, err := viewportJSON(result, ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fragment, "fragment", "f", "", "Viewport URL fragment")
	cmd.Flags().StringVarP(&navigations, "navigations", "n", "", "Navigations to append to the fragment's own")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	source.addFlags(cmd)
	_ = cmd.MarkFlagRequired("fragment")
	return cmd
}

// viewportJSON describes vp and the ranges it renders.
func viewportJSON(vp viewport.Viewport, ctx viewport.Context) (string, error) {
	type field struct {
		path  string
		value any
	}
	rect := vp.Rectangle()
	fields := []field{
		{"fragment", vp.URLFragment()},
		{"home", rect.Home().String()},
		{"width", rect.Width()},
		{"height", rect.Height()},
		{"includeFrozenColumnsRows", vp.IncludeFrozenColumnsRows()},
	}
	if sel, ok := vp.AnchoredSelection(); ok {
		fields = append(fields,
			field{"selection.range", sel.Selection().String()},
			field{"selection.anchor", sel.Anchor().KebabText()},
		)
	}
	ranges := []string{}
	for _, r := range ctx.Windows(rect, vp.IncludeFrozenColumnsRows()).Ranges() {
		ranges = append(ranges, r.String())
	}
	fields = append(fields, field{"windows", ranges})

	out := "{}"
	var err error
	for _, f := range fields {
		if out, err = sjson.Set(out, f.path, f.value); err != nil {
			return "", err
		}
	}
	return out, nil
}
