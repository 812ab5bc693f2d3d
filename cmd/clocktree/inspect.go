package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/sim"
)

var (
	inspectImage string

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Decode the clock tree stored in a register image",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(inspectImage) == 0 {
				log.Fatalf("no register image specified, use --image")
			}
			if _, err := os.Stat(inspectImage); err != nil {
				log.Fatalf("%v", err)
			}

			img, err := chip.MapImage(inspectImage)
			if err != nil {
				log.Fatalf("%v", err)
			}
			defer img.Close()

			hw := sim.Attach(img.MemoryBus)

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "GENERATOR\tSOURCE\tDIVIDER\tSTANDBY\tFREQUENCY")
			for _, gen := range hw.Generators() {
				if !gen.Enabled && Verbosity(verbosity) < Info {
					continue
				}
				divider := fmt.Sprint(gen.Divider)
				if gen.DivSel {
					divider = fmt.Sprintf("2^%d", gen.Divider+1)
				}
				state := clock.Hertz(hw.Frequency(gen.ID)).String()
				if !gen.Enabled {
					state = "off"
				}
				fmt.Fprintf(w, "GCLK%d\t%s\t%s\t%t\t%s\n", gen.ID, sim.SourceName(gen.Source), divider, gen.RunStandby, state)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "CHANNEL\tGENERATOR\tFREQUENCY")
			for _, ch := range hw.EnabledChannels() {
				fmt.Fprintf(w, "%s\tGCLK%d\t%s\n", clock.ChannelID(ch.ID), ch.Generator, clock.Hertz(hw.Frequency(ch.Generator)))
			}
			w.Flush()

			fmt.Printf("\nCPU divider %d, %d flash wait states\n", hw.CoreDivider(), hw.FlashWaitStates())
			println(Debug, hw)
		},
	}
)

func init() {
	inspectCmd.Flags().StringVar(&inspectImage, "image", "", "register image written by bringup --image")
}
