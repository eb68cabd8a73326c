package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host    string
	userID  string
	steamID string
)

var rootCmd = &cobra.Command{
	Use:   "peerscout-cli",
	Short: "A CLI to interact with the peerscout server",
	Long: `A command-line interface for making requests to the various endpoints
of the peerscout application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "1", "The user id sent as X-User-ID")
	rootCmd.PersistentFlags().StringVar(&steamID, "steam-id", "", "The steam id64 sent as X-Steam-ID")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
