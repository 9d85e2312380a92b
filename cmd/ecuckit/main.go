package main

import (
	"os"

	"github.com/guu8hc/ecuckit/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.TreeCmd())
	rootCmd.AddCommand(commands.ConvertCmd())
	rootCmd.AddCommand(commands.SearchCmd())
	rootCmd.AddCommand(commands.FindCmd())
	rootCmd.AddCommand(commands.ConfigureCmd())
	rootCmd.AddCommand(commands.ServeCmd())
	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
