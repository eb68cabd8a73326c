package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(refreshNamesCmd)
	rootCmd.AddCommand(evaluationsCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch the enriched recent match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/matches/history")
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/users/me")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the current user's aggregated statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/users/me/stats")
	},
}

var refreshNamesCmd = &cobra.Command{
	Use:   "refresh-names",
	Short: "Refresh last known names of evaluated players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/users/me/refresh-names")
	},
}

var evaluationsCmd = &cobra.Command{
	Use:   "evaluations",
	Short: "List the evaluations written by the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/evaluations")
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the distinct tags used by the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/evaluations/tags")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-Steam-ID", steamID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
