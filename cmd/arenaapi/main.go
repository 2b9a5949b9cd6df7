package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/iov-one/arena/cmd/arenaapi/client"
	"github.com/iov-one/arena/cmd/arenaapi/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/time/rate"
)

type configuration struct {
	HTTP       string
	Tendermint string
	LogLevel   string
	// RateLimit is the number of requests per second that the API serves.
	RateLimit float64
	RateBurst int
	// BreakerTimeout is how long the node is not called after it failed
	// too many times.
	BreakerTimeout time.Duration
}

func main() {
	conf := configuration{
		HTTP:           env("HTTP", ":8000"),
		Tendermint:     env("TENDERMINT", "http://localhost:26657"),
		LogLevel:       env("LOG_LEVEL", "info"),
		RateLimit:      envFloat("RATE_LIMIT", 50),
		RateBurst:      int(envFloat("RATE_BURST", 100)),
		BreakerTimeout: envDuration("BREAKER_TIMEOUT", 30*time.Second),
	}

	if err := run(conf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func envFloat(name string, fallback float64) float64 {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envDuration(name string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func run(conf configuration) error {
	level, err := log.AllowLevel(conf.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %s", err)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), level).
		With("module", "arenaapi")

	getter := client.NewBreakerGetter("tendermint", client.NewHTTPClient(conf.Tendermint), conf.BreakerTimeout)
	node := client.NewNode(getter)
	if height, err := node.Height(context.Background()); err != nil {
		logger.Error("tendermint is not reachable", "err", err)
	} else {
		logger.Info("tendermint connected", "height", height)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	limiter := rate.NewLimiter(rate.Limit(conf.RateLimit), conf.RateBurst)

	server := &http.Server{
		Addr:         conf.HTTP,
		Handler:      handlers.NewRouter(node, logger, reg, limiter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	logger.Info("listening", "addr", conf.HTTP, "tendermint", conf.Tendermint)
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("http server: %s", err)
	}
	return nil
}
