package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmisim/fmisim/fmi/models"
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "fmisim",
	Short: "Co-simulation driver for the built-in FMI 3.0 models",
}

// modelsCmd lists the registered models.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the registered models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range models.Names() {
			model, _ := models.New(name)
			fmt.Printf("%-16s %s\n", name, model.Description().GUID)
		}
	},
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(runCmd)
}
