package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"io"

	"github.com/charmbracelet/log"
	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/pubsub"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			s.Store.ClearMatch(matchID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
			log.Info("Successfully cleared match from store", "matchID", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.GetAllTeams()
		if err != nil {
			http.Error(w, "Failed to get teams", http.StatusInternalServerError)
			log.Error("Failed to get teams from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(teams); err != nil {
			log.Error("Failed to encode teams to JSON", "error", err)
		}
	}
}

func (s *Server) ListCompetitionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comps, err := s.Store.GetCompetitions()
		if err != nil {
			http.Error(w, "Failed to get competitions", http.StatusInternalServerError)
			log.Error("Failed to get competitions from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comps); err != nil {
			log.Error("Failed to encode competitions to JSON", "error", err)
		}
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(matches); err != nil {
			log.Error("Failed to encode matches to JSON", "error", err)
		}
	}
}

// TeamMatchesHandler serves the merged match list for a single team, the
// denormalized index reconciled against the competition tree.
func (s *Server) TeamMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.URL.Query().Get("teamID")
		if teamID == "" {
			http.Error(w, "teamID is required", http.StatusBadRequest)
			return
		}

		matches, err := s.Processor.TeamMatches(teamID)
		if err != nil {
			http.Error(w, "Failed to get team matches", http.StatusInternalServerError)
			log.Error("Failed to get team matches", "error", err, "teamID", teamID)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(matches); err != nil {
			log.Error("Failed to encode team matches to JSON", "error", err)
		}
	}
}

// PlayerStatsHandler serves aggregated per-player stats for the requested
// scopes. Missing scope parameters default to "all".
func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamScope := scopeOrAll(r.URL.Query().Get("team"))
		seasonScope := scopeOrAll(r.URL.Query().Get("season"))
		competitionScope := scopeOrAll(r.URL.Query().Get("competition"))

		stats, err := s.Processor.PlayerStats(teamScope, seasonScope, competitionScope)
		if err != nil {
			http.Error(w, "Failed to aggregate player stats", http.StatusInternalServerError)
			log.Error("Failed to aggregate player stats", "error", err, "team", teamScope, "season", seasonScope, "competition", competitionScope)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.Error("Failed to encode player stats to JSON", "error", err)
		}
	}
}

// StandingsHandler serves the league table for one competition.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID := r.URL.Query().Get("competitionID")
		if competitionID == "" {
			http.Error(w, "competitionID is required", http.StatusBadRequest)
			return
		}

		comp, table, err := s.Processor.Standings(competitionID)
		if err != nil {
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			log.Error("Failed to compute standings", "error", err, "competitionID", competitionID)
			return
		}

		response := struct {
			Competition *club.Competition `json:"competition"`
			Standings   []club.Standing   `json:"standings"`
		}{comp, table}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Error("Failed to encode standings to JSON", "error", err)
		}
	}
}

// RecordResultHandler stores a posted match and triggers the downstream
// invalidation and notification events.
func (s *Server) RecordResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var match club.Match
		if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			log.Error("Failed to decode match JSON", "error", err)
			return
		}

		isDryRun := isDryRunFromContext(r)
		if err := s.Processor.RecordResult(&match, isDryRun); err != nil {
			http.Error(w, "Failed to record result", http.StatusInternalServerError)
			log.Error("Failed to record result", "error", err, "matchID", match.ID)
			return
		}
		w.Write([]byte("OK"))
	}
}

// decodePushMessage unwraps a pubsub push envelope and returns the raw
// MessagePack payload.
func decodePushMessage(r *http.Request) ([]byte, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	log.Debug("Received pubsub push message", "body", string(bodyBytes))

	var pubsubMsg struct {
		Subscription string `json:"subscription"`
		Message      struct {
			Data string `json:"data"` // base64-encoded message payload
		} `json:"message"`
	}

	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wrapper JSON: %w", err)
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}
	return rawData, nil
}

// StatsInvalidatedHandler reacts to a stats invalidation event by warming the
// aggregation cache for the broadest scope at the new data version.
func (s *Server) StatsInvalidatedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushMessage(r)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}

		event := pubsub.StatsInvalidated{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to process push message", "error", err)
			http.Error(w, "Invalid push message payload", http.StatusBadRequest)
			return
		}
		log.Info("Stats invalidated", "dataVersion", event.DataVersion)

		if _, err := s.Processor.PlayerStats("all", "all", "all"); err != nil {
			log.Error("Failed to warm aggregation cache", "error", err, "dataVersion", event.DataVersion)
		}
		w.Write([]byte("OK"))
	}
}

// NotifyStandingsHandler reacts to a standings notification event by posting
// the competition's table.
func (s *Server) NotifyStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushMessage(r)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		event := pubsub.NotifyStandings{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to process push message", "error", err)
			http.Error(w, "Invalid push message payload", http.StatusBadRequest)
			return
		}

		if err := s.Processor.NotifyStandings(event.CompetitionID, isDryRun); err != nil {
			log.Error("Failed to notify standings", "error", err, "competitionID", event.CompetitionID)
			http.Error(w, "Failed to notify standings", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// StandingsCommandHandler returns a handler for the /standings Slack command.
// The command text selects a competition by ID or case-insensitive name.
func (s *Server) StandingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		query := strings.TrimSpace(r.FormValue("text"))
		if query == "" {
			http.Error(w, "Competition is required.", http.StatusBadRequest)
			return
		}

		comps, err := s.Store.GetCompetitions()
		if err != nil {
			http.Error(w, "Failed to get competitions", http.StatusInternalServerError)
			log.Error("Failed to get competitions from store", "error", err)
			return
		}

		competitionID := ""
		for _, c := range comps {
			if c.ID == query || strings.EqualFold(c.Name, query) {
				competitionID = c.ID
				break
			}
		}
		if competitionID == "" {
			http.Error(w, "Unknown competition.", http.StatusNotFound)
			return
		}

		comp, table, err := s.Processor.Standings(competitionID)
		if err != nil {
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			log.Error("Failed to compute standings", "error", err, "competitionID", competitionID)
			return
		}

		msg, err := s.Notifier.FormatStandingsResponse(comp, table)
		if err != nil {
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			log.Error("Failed to format standings", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack
// command. The command text optionally narrows the season scope.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		seasonScope := scopeOrAll(strings.TrimSpace(r.FormValue("text")))

		entries, err := s.Processor.Leaderboard("all", seasonScope, "all", 10)
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get leaderboard", "error", err)
			return
		}

		msg, err := s.Notifier.FormatLeaderboardResponse(entries, seasonScope)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// PlayerStatsCommandHandler returns a handler for the /player-stats Slack command.
func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		playerName := strings.TrimSpace(r.FormValue("text"))
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", playerName)

		name, stats, found, err := s.Processor.PlayerStatsByName(playerName, "all", "all", "all")
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats", "error", err, "player", playerName)
			return
		}

		var msg any
		if !found {
			log.Warn("Could not find player stats", "player", playerName)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(playerName)
		} else {
			msg, err = s.Notifier.FormatPlayerStatsResponse(name, stats)
		}

		if err != nil {
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			log.Error("Failed to format player stats", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

func scopeOrAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}
