package commands

import (
	"github.com/spf13/cobra"
)

// Flags shared by the run command.
var (
	flagRelayURL string
	flagToken    string
	flagModel    string
	flagNoAI     bool
	flagHeadless bool
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to the relay and wait for commands",
	Long:  "Connect this machine to the relay server and execute commands sent from a paired phone",
	Run: func(cmd *cobra.Command, args []string) {
		RunAgent()
	},
}

func init() {
	RunCmd.Flags().StringVar(&flagRelayURL, "relay-url", "", "Relay server websocket URL")
	RunCmd.Flags().StringVar(&flagToken, "token", "", "Pairing token (overrides config)")
	RunCmd.Flags().StringVar(&flagModel, "model", "", "AI model for command interpretation")
	RunCmd.Flags().BoolVar(&flagNoAI, "no-ai", false, "Disable AI interpretation; rule-based parsing only")
	RunCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Disable the status dashboard even on a TTY")
}

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		RunVersion()
	},
}

// DoctorCmd represents the doctor command
var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the local setup",
	Long:  "Check the configuration, automation prerequisites, and AI interpreter availability",
	Run: func(cmd *cobra.Command, args []string) {
		RunDoctor()
	},
}

// TokenCmd represents the token command
var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show or rotate the pairing token",
	Run: func(cmd *cobra.Command, args []string) {
		rotate, _ := cmd.Flags().GetBool("rotate")
		RunToken(rotate)
	},
}

func init() {
	TokenCmd.Flags().Bool("rotate", false, "Generate and persist a new pairing token")
}

// AliasesCmd represents the aliases command
var AliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List known app and website aliases",
	Run: func(cmd *cobra.Command, args []string) {
		RunAliases()
	},
}

// MCPCmd represents the mcp command
var MCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing the automation tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunMCP()
	},
}
