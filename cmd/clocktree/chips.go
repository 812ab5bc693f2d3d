package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/clocktree/targets"
)

var chipsCmd = &cobra.Command{
	Use:   "chips",
	Short: "List the chips whose clock tree can be brought up",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "SERIES\tSUPPORTED\tGENERATORS\tCHANNELS\tCHIPS")
		for _, target := range targets.All() {
			supported := "yes"
			if !target.Supported() {
				supported = "with -tags " + target.BuildTag
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", target.Series, supported, target.Generators,
				len(target.Channels), strings.Join(target.Chips, ","))
		}
		w.Flush()

		for _, target := range targets.All() {
			printf(Info, "\n%s channels:\n", target.Series)
			for _, ch := range target.Channels {
				printf(Info, "  %2d %s\n", ch.ID, ch.Name)
			}
		}
	},
}
