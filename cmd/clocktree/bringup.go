package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"omibyte.io/clocktree/board"
	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/sim"
)

var (
	bringupOpts = struct {
		profile string
		image   string
		trace   bool
		latency int
		gated   bool
	}{}

	bringupCmd = &cobra.Command{
		Use:   "bringup",
		Short: "Apply a board profile to simulated hardware",
		Long: `Bring the clock tree of a board profile up on simulated hardware and print the
resulting generator frequencies and peripheral channels. With --image the register
file is kept in a memory mapped file that "clocktree inspect" can decode later.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			violations, err := bringup()
			if err != nil {
				log.Fatalf("%v", err)
			}
			if violations > 0 {
				os.Exit(2)
			}
		},
	}
)

// bringup runs the profile and returns the number of protocol violations the hardware saw. The
// register image is closed on every return path.
func bringup() (int, error) {
	pl := loadPlan(bringupOpts.profile)

	options := []sim.Option{sim.WithLatency(bringupOpts.latency)}
	if bringupOpts.gated {
		options = append(options, sim.WithBusClockGated())
	}
	if len(bringupOpts.image) > 0 {
		img, err := chip.MapImage(bringupOpts.image)
		if err != nil {
			return 0, err
		}
		defer func() {
			if err := img.Close(); err != nil {
				log.Printf("close %s: %v", bringupOpts.image, err)
			}
		}()
		options = append(options, sim.WithImage(img.MemoryBus))
		println(Info, "register image:", bringupOpts.image)
	}

	hw := sim.New(options...)
	p, err := chip.Take(hw)
	if err != nil {
		return 0, err
	}

	c, report, err := pl.Bringup(p)
	if err != nil {
		return 0, errors.Wrap(err, pl.Name)
	}
	c.Free()

	printReport(report)

	if bringupOpts.trace || Verbosity(verbosity) >= Debug {
		fmt.Println()
		for _, a := range hw.Trace() {
			if a.Op == sim.Read && !bringupOpts.trace {
				continue
			}
			fmt.Println(a)
		}
	}
	printf(Info, "\n%d register writes\n", hw.WriteCount())

	for _, v := range hw.Violations() {
		log.Printf("violation: %v", v)
	}
	return len(hw.Violations()), nil
}

func loadPlan(path string) *board.Plan {
	if len(path) == 0 {
		log.Fatalf("no board profile specified, use -f")
	}
	profile, err := board.LoadFile(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	pl, err := profile.Plan()
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	println(Info, "board:", pl.Name, "on", pl.Target.Series, "with", pl.Reference, "reference")
	return pl
}

func printReport(report *board.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "GENERATOR\tFREQUENCY")
	for id, freq := range report.Frequencies {
		if freq == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", clock.GeneratorID(id), freq)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CHANNEL\tFREQUENCY")
	for _, ch := range report.Used.Channels() {
		freq, ok := report.Channels[ch]
		if !ok {
			fmt.Fprintf(w, "%s\t(%s reference)\n", ch, report.Reference)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", ch, freq)
	}
	w.Flush()
}

func init() {
	bringupCmd.Flags().StringVarP(&bringupOpts.profile, "file", "f", "", "board profile")
	bringupCmd.Flags().StringVar(&bringupOpts.image, "image", "", "keep the register file in this image")
	bringupCmd.Flags().BoolVar(&bringupOpts.trace, "trace", false, "print every register access")
	bringupCmd.Flags().IntVar(&bringupOpts.latency, "latency", sim.DefaultLatency, "bus reads until a synchronized write completes")
	bringupCmd.Flags().BoolVar(&bringupOpts.gated, "gated", false, "power on with the GCLK bus clock masked")
}
