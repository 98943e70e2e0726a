package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/okrbeck/clubtable/internal/club"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	teams := []club.Team{
		{ID: "team-1", Name: "Seeder FC First"},
		{ID: "team-2", Name: "Seeder FC Reserves"},
		{ID: "team-3", Name: "Riverside Rovers"},
		{ID: "team-4", Name: "Northfield United"},
	}
	for _, tm := range teams {
		if _, err := db.Exec("INSERT OR IGNORE INTO teams (id, name) VALUES (?, ?)", tm.ID, tm.Name); err != nil {
			log.Fatalf("Failed to insert team %s: %s", tm.Name, err)
		}
	}
	log.Info("Ensured teams exist.")

	players := []club.Player{
		{ID: "player-1", Name: "Seeder Player A"},
		{ID: "player-2", Name: "Seeder Player B"},
		{ID: "player-3", Name: "Seeder Player C"},
		{ID: "player-4", Name: "Seeder Player D"},
	}
	for _, p := range players {
		if _, err := db.Exec("INSERT OR IGNORE INTO players (id, name) VALUES (?, ?)", p.ID, p.Name); err != nil {
			log.Fatalf("Failed to insert player %s: %s", p.Name, err)
		}
	}
	log.Info("Ensured players exist.")

	teamIDs, _ := json.Marshal([]string{"team-1", "team-2", "team-3", "team-4"})
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO competitions (id, name, season, format, team_ids_json) VALUES (?, ?, ?, ?, ?)",
		"comp-seed", "Seeded League", "2024/25", string(club.FormatLeague), string(teamIDs),
	); err != nil {
		log.Fatalf("Failed to insert competition: %s", err)
	}

	const numRounds = 30
	roundIDs := make([]string, 0, numRounds)
	for i := 1; i <= numRounds; i++ {
		roundID := fmt.Sprintf("round-%d", i)
		roundIDs = append(roundIDs, roundID)
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO rounds (id, competition_id, name) VALUES (?, ?, ?)",
			roundID, "comp-seed", fmt.Sprintf("Matchday %d", i),
		); err != nil {
			log.Fatalf("Failed to insert round: %s", err)
		}
	}
	log.Info("Ensured competition and rounds exist.")

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*14) // 14 columns per match

	for i := 0; i < numMatches; i++ {
		matchDate := time.Now().AddDate(0, 0, -rand.Intn(365))
		homeIdx := rand.Intn(len(teams))
		awayIdx := (homeIdx + 1 + rand.Intn(len(teams)-1)) % len(teams)
		lines := []club.PlayerStatLine{
			{PlayerID: players[rand.Intn(len(players))].ID, MinutesPlayed: 90, Goals: rand.Intn(3), Assists: rand.Intn(2)},
			{PlayerID: players[rand.Intn(len(players))].ID, MinutesPlayed: 45 + rand.Intn(45)},
		}
		linesBlob, _ := json.Marshal(lines)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			"comp-seed",
			roundIDs[rand.Intn(len(roundIDs))],
			teams[homeIdx].ID,
			teams[awayIdx].ID,
			rand.Intn(5),
			rand.Intn(5),
			matchDate.Format("2006-01-02"),
			"15:00",
			"Seeded Ground",
			0, // friendly
			string(linesBlob),
			nil, // team_lines_json
			nil, // events_json
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT OR IGNORE INTO matches (id, competition_id, round_id, home_team_id, away_team_id,
					home_score, away_score, match_date, match_time, venue, friendly,
					player_lines_json, team_lines_json, events_json)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*14)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	// Project the seeded matches into the per-team index, once per side.
	for _, side := range []string{"home_team_id", "away_team_id"} {
		stmt := fmt.Sprintf(`
			INSERT OR IGNORE INTO match_index (team_id, match_id, competition_id, round_id, home_team_id,
				away_team_id, home_score, away_score, match_date, match_time, venue, friendly)
			SELECT %s, id, competition_id, round_id, home_team_id, away_team_id,
				home_score, away_score, match_date, match_time, venue, friendly FROM matches;`, side)
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to populate match index: %s", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('data_version', '1')
		ON CONFLICT(key) DO UPDATE SET value = CAST(CAST(value AS INTEGER) + 1 AS TEXT);`); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to bump data version: %s", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
