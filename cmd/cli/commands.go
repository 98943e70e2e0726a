package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(competitionsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(playerStatsCmd)
	rootCmd.AddCommand(metricsCmd)

	standingsCmd.Flags().StringVar(&competitionID, "competition", "", "The competition ID to compute the table for")
	standingsCmd.MarkFlagRequired("competition")
	playerStatsCmd.Flags().StringVar(&teamScope, "team", "all", "Team scope")
	playerStatsCmd.Flags().StringVar(&seasonScope, "season", "all", "Season scope")
	playerStatsCmd.Flags().StringVar(&competitionScope, "competition", "all", "Competition scope")
}

var (
	competitionID    string
	teamScope        string
	seasonScope      string
	competitionScope string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams")
	},
}

var competitionsCmd = &cobra.Command{
	Use:   "competitions",
	Short: "List the competitions in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/competitions")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List all matches in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Compute the league table for a competition",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings?competitionID=" + url.QueryEscape(competitionID))
	},
}

var playerStatsCmd = &cobra.Command{
	Use:   "player-stats",
	Short: "Aggregate player stats for a scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("team", teamScope)
		query.Set("season", seasonScope)
		query.Set("competition", competitionScope)
		return performGetRequest("/player-stats?" + query.Encode())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
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
