package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/platform/tui"
	"github.com/vovakirdan/ramadhan-rush/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session and engine. The SSH user name is
the save profile, so banked score and shop items follow the user. Runs are
stored per-server (all users share the same leaderboard).

With --http the leaderboard is also served as JSON:
  GET /runs?difficulty=&limit=
  GET /runs/{id}
  GET /profiles/{profile}/runs
  GET /stats

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rush/host_key

Examples:
  rush serve                           # Listen on :23234 with auto-generated key
  rush serve --ssh :2222               # Listen on port 2222
  rush serve --http :8080              # Also serve the leaderboard
  rush serve --db ./rush.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := game.Validate(); err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, game)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if flagHTTPAddr != "" {
		if store := server.Store(); store != nil {
			board := web.NewServer(store, server.Logger().WithPrefix("rush-http"))
			go func() {
				if err := board.ListenAndServe(ctx, flagHTTPAddr); err != nil {
					server.Logger().Error("leaderboard stopped", "err", err)
				}
			}()
		} else {
			server.Logger().Warn("leaderboard disabled: no database")
		}
	}

	fmt.Printf("Starting Ramadhan Rush SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return err
	}
	return nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
