package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/time/rate"
)

// NewRouter returns the HTTP API routes. Metrics of the registry are
// exposed under /metrics.
func NewRouter(node Node, logger log.Logger, reg *prometheus.Registry, limiter *rate.Limiter) *mux.Router {
	rt := mux.NewRouter()
	rt.Use(RequestLog(logger), Instrument(NewMetrics(reg)))
	rt.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods("GET")

	api := rt.PathPrefix("/").Subrouter()
	api.Use(RateLimit(limiter))
	api.Handle("/info", &InfoHandler{Node: node, Logger: logger}).Methods("GET")
	api.Handle("/topics/{topicID}", &TopicHandler{Node: node, Logger: logger}).Methods("GET")
	api.Handle("/topics/{topicID}/choices", &TopicChoicesHandler{Node: node, Logger: logger}).Methods("GET")
	api.Handle("/topics/{topicID}/choices/{choiceID}", &ChoiceHandler{Node: node, Logger: logger}).Methods("GET")
	api.Handle("/positions/{owner}", &PositionsHandler{Node: node, Logger: logger}).Methods("GET")
	api.Handle("/allowances/{owner}", &AllowancesHandler{Node: node, Logger: logger}).Methods("GET")

	rt.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSONErr(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	return rt
}
