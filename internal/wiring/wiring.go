// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/nannou-org/hotglsl/internal/adapters/config"
	_ "github.com/nannou-org/hotglsl/internal/adapters/logger"
	// Register app nodes.
	_ "github.com/nannou-org/hotglsl/internal/app"
)
