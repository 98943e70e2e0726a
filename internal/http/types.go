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

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
