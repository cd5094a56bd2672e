package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/actionx/internal/render"
)

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Show the action creators a manifest defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, creators, err := a.build(args[0])
			if err != nil {
				return a.fail(err)
			}

			v := &render.Visualizer{}
			switch a.cfg.Format {
			case "dot":
				fmt.Fprint(a.out, v.ExportDOT(creators))
			case "json":
				data, err := v.ExportJSON(creators)
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(a.out, string(data))
			default:
				fmt.Fprint(a.out, v.ExportTree(creators))
			}
			return nil
		},
	}
	cmd.Flags().String("format", "tree", "output format (tree, dot, json)")
	return cmd
}
