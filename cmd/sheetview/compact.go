package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/sheetview/internal/viewport"
)

func newCompactCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "compact <navigations>",
		Short: "Remove navigations that cancel out",
		Example: `  sheetview compact "left,right,up"
  sheetview compact --json "select cell A1,down,extend-down"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := viewport.ParseNavigationList(args[0])
			if err != nil {
				return err
			}
			compacted := list.Compact()
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), compacted.Text())
				return nil
			}

			out, err := compactJSON(list, compacted)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func compactJSON(list, compacted viewport.NavigationList) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"input", list.Text()},
		{"compacted", compacted.Text()},
		{"removed", list.Len() - compacted.Len()},
	}
	out := "{}"
	for _, f := range fields {
		var err error
		if out, err = sjson.Set(out, f.path, f.value); err != nil {
			return "", err
		}
	}
	return out, nil
}
