package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/clocktree/chip"
	"omibyte.io/clocktree/clock"
	"omibyte.io/clocktree/sim"
)

var (
	graphOpts = struct {
		profile string
		output  string
		static  bool
		order   bool
	}{}

	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Emit the clock tree of a board profile as Graphviz DOT",
		Long: `Emit the clock tree of a board profile in the Graphviz DOT language. The tree is
read back from the controller after bringing the profile up on simulated hardware,
or with --static derived from the profile alone.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			pl := loadPlan(graphOpts.profile)

			var tree *clock.Tree
			if graphOpts.static {
				tree = pl.Tree()
			} else {
				p, err := chip.Take(sim.New())
				if err != nil {
					log.Fatalf("%v", err)
				}
				c, _, err := pl.Bringup(p)
				if err != nil {
					log.Fatalf("%s: %v", pl.Name, err)
				}
				tree = c.Tree()
				c.Free()
			}

			if graphOpts.order {
				nodes, err := tree.Order()
				if err != nil {
					log.Fatalf("%v", err)
				}
				names := make([]string, len(nodes))
				for i, n := range nodes {
					names[i] = n.Name
				}
				fmt.Println(strings.Join(names, " -> "))
				return
			}

			name := strings.NewReplacer("-", "_", ".", "_", "/", "_").Replace(pl.Name)
			b, err := tree.MarshalDOT(name)
			if err != nil {
				log.Fatalf("%v", err)
			}
			b = append(b, '\n')

			if len(graphOpts.output) == 0 {
				os.Stdout.Write(b)
				return
			}
			if err := os.WriteFile(graphOpts.output, b, 0644); err != nil {
				log.Fatalf("%v", err)
			}
			println(Info, "wrote", graphOpts.output)
		},
	}
)

func init() {
	graphCmd.Flags().StringVarP(&graphOpts.profile, "file", "f", "", "board profile")
	graphCmd.Flags().StringVarP(&graphOpts.output, "output", "o", "", "write the graph to this file instead of stdout")
	graphCmd.Flags().BoolVar(&graphOpts.static, "static", false, "derive the tree from the profile without simulating it")
	graphCmd.Flags().BoolVar(&graphOpts.order, "order", false, "print the bring-up order instead of the graph")
}
