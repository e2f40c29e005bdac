// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/srcdeb/srcdeb/internal/adapters/config"
	_ "github.com/srcdeb/srcdeb/internal/adapters/debuild"
	_ "github.com/srcdeb/srcdeb/internal/adapters/dpkg"
	_ "github.com/srcdeb/srcdeb/internal/adapters/fs"
	_ "github.com/srcdeb/srcdeb/internal/adapters/logger"
	_ "github.com/srcdeb/srcdeb/internal/adapters/perl"
	_ "github.com/srcdeb/srcdeb/internal/adapters/prove"
	_ "github.com/srcdeb/srcdeb/internal/adapters/shell"
	_ "github.com/srcdeb/srcdeb/internal/adapters/vcs"
	// Register app and engine nodes.
	_ "github.com/srcdeb/srcdeb/internal/app"
	_ "github.com/srcdeb/srcdeb/internal/engine/render"
	_ "github.com/srcdeb/srcdeb/internal/engine/resolve"
	_ "github.com/srcdeb/srcdeb/internal/engine/scan"
)
