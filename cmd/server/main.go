// Package main - Entry point for the ticket upgrade API server
package main

import (
	"flag"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ticket-upgrade/api"
	"ticket-upgrade/internal/config"
	"ticket-upgrade/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Printf("Error initializing logging: %v\n", err)
		return
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	apiServer := api.NewServer(version)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("starting upgrade engine server",
		zap.String("addr", listenAddr),
		zap.String("version", version))

	if err := http.ListenAndServe(listenAddr, mux); err != nil {
		logging.Error("server stopped", zap.Error(err))
	}
}
