package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type Verbosity int

const (
	Quiet Verbosity = iota
	Info
	Debug
)

var (
	verbosity int

	mainCmd = &cobra.Command{
		Use:   "clocktree",
		Short: "Bring up SAMD21/SAMD11 clock trees on simulated hardware",
		Long: `clocktree runs board clock profiles against a simulated SAMD21/SAMD11 clock
distribution and reports the resulting generators, channels and register accesses.`,
		SilenceUsage: true,
	}
)

func println(v Verbosity, args ...any) {
	if Verbosity(verbosity) >= v {
		fmt.Println(args...)
	}
}

func printf(v Verbosity, format string, args ...any) {
	if Verbosity(verbosity) >= v {
		fmt.Printf(format, args...)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("clocktree: ")

	mainCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase output, repeat for register level detail")
	mainCmd.AddCommand(chipsCmd, bringupCmd, inspectCmd, graphCmd)
}

func main() {
	if err := mainCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
