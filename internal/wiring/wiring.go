// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tabu/internal/adapters/config"
	_ "go.trai.ch/tabu/internal/adapters/logger"
	_ "go.trai.ch/tabu/internal/adapters/metrics"
	_ "go.trai.ch/tabu/internal/adapters/report"
	_ "go.trai.ch/tabu/internal/adapters/scoring"
	_ "go.trai.ch/tabu/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/tabu/internal/app"
	_ "go.trai.ch/tabu/internal/engine/localsearch"
)
