package http

import (
	"net/http"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/config"
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/notifier"
	"github.com/okrbeck/clubtable/internal/processor"
	"github.com/okrbeck/clubtable/internal/pubsub"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/teams", Chain(s.ListTeamsHandler(), paramsMiddleware))
	s.Router.Handle("/competitions", Chain(s.ListCompetitionsHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/team-matches", Chain(s.TeamMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/player-stats", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/record-result", Chain(s.RecordResultHandler(), paramsMiddleware))
	s.Router.Handle("/stats-invalidated", Chain(s.StatsInvalidatedHandler(), paramsMiddleware))
	s.Router.Handle("/notify-standings", Chain(s.NotifyStandingsHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/standings", Chain(s.StandingsCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
