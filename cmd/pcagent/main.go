package main

import (
	"os"

	"github.com/spf13/cobra"

	"pcagent/internal/commands"
)

var rootCmd = &cobra.Command{
	Use:   "pcagent",
	Short: "Control this machine from your phone",
	Long:  "An agent that connects this machine to a relay server so a paired phone can open apps, browse websites, and send keystrokes",
}

func init() {
	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.VersionCmd)
	rootCmd.AddCommand(commands.DoctorCmd)
	rootCmd.AddCommand(commands.TokenCmd)
	rootCmd.AddCommand(commands.AliasesCmd)
	rootCmd.AddCommand(commands.MCPCmd)

	// Bare invocation behaves like `pcagent run`.
	rootCmd.Run = commands.RunCmd.Run
	rootCmd.Flags().AddFlagSet(commands.RunCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
