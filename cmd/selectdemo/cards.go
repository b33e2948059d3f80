package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vango-dev/selectdemo/internal/gallery"
)

func cardsCmd(flags *globalFlags) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the gallery cards",
		Long: `List the cards in catalog order with their anchors.

With --source each card is followed by the example code it shows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			deps, err := galleryDeps(cfg, newLogger(cfg.Log, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cards := gallery.New(deps).Cards()
			if showSource {
				for _, c := range cards {
					fmt.Fprintf(out, "## %s (#%s)\n\n", c.Title(), c.Anchor)
					if c.Source != "" {
						fmt.Fprintf(out, "%s\n\n", c.Source)
					}
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tGROUP\tSUB\tANCHOR")
			for i, c := range cards {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.GroupLabel, c.SubLabel, c.Anchor)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&showSource, "source", "s", false, "Print each card's example source")
	return cmd
}
