package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scalameta/docsite/internal/dev"
	"github.com/scalameta/docsite/internal/preview"
	"github.com/scalameta/docsite/internal/site"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		watch      bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start an HTTP server that previews the footer.

With --watch the configuration file is watched and connected
browsers reload when the rendered footer changes. Invalid edits
are shown as an overlay and the last good configuration is kept.

Routes:
  /             preview page
  /footer       HTML fragment
  /footer.json  view tree
  /healthz      liveness
  /metrics      Prometheus metrics

Examples:
  docsite serve
  docsite serve --addr 127.0.0.1:8080 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, configPath, addr, watch, pretty)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file or directory (default: search from working directory)")
	cmd.Flags().StringVarP(&addr, "addr", "a", ":3000", "Address to listen on")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload when the config file changes")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent served HTML")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, configPath, addr string, watch, pretty bool) error {
	cfg, err := site.Resolve(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := preview.Options{Source: preview.StaticSource(*cfg), LiveReload: watch}

	var holder *dev.ConfigHolder
	if watch {
		holder = dev.NewConfigHolder(cfg)
		opts.Source = holder
	}

	srv := preview.New(&preview.ServerConfig{Address: addr, Pretty: pretty}, opts)

	if holder != nil {
		holder.Subscribe(func(ev dev.Event) {
			if ev.Err != nil {
				warn(out, "Config rejected, keeping previous: %v", ev.Err)
				return
			}
			success(out, "Reloaded (%d changes)", len(ev.Patches))
		})
		if err := srv.Watch(ctx, holder); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	success(out, "Previewing %q", cfg.Title)
	if path := cfg.Path(); path != "" {
		info(out, "Config:  %s", path)
	}
	info(out, "Address: %s", addr)
	if watch {
		info(out, "Watching for changes")
	}

	return srv.Run(ctx)
}
