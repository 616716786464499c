package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	nYears  int
	outFile string
)

func main() {
	root := &cobra.Command{
		Use:   "acd",
		Short: "Acadian variant growth and yield projection",
		Long: `Projects forest stand tree lists forward in time using the Acadian
variant growth, mortality, crown and ingrowth equations for Maine and
New Brunswick. Tree lists are read from csv files or from an FIA
SQLite database and the grown tree lists are written back out as csv.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVarP(&nYears, "years", "y", 10, "number of annual growth cycles to project")
	root.PersistentFlags().StringVarP(&outFile, "out", "o", "acd.trees.csv", "grown tree list output path")
	root.AddCommand(csvCmd(), fiaCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
