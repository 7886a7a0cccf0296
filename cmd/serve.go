package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pacesnailbar/nailbar/internal/metrics"
	"github.com/pacesnailbar/nailbar/internal/server"
	"github.com/pacesnailbar/nailbar/internal/site"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the salon website",
	Long: `Starts the web server: the page, the booking endpoints, static assets and,
when enabled, live carousel/reveal sessions and Prometheus metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in the browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c, err := loadContent(cfg, logger)
	if err != nil {
		return err
	}

	var m *metrics.SiteMetrics
	if cfg.HTTP.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if m, err = metrics.New(reg); err != nil {
			return err
		}
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Compress:       cfg.HTTP.Compress,
	}, logger)

	st, err := site.New(c, siteOptions(cfg), logger.Named("site"), m)
	if err != nil {
		return err
	}
	st.RegisterRoutes(srv.Router(), srv.PageMiddleware()...)
	if m != nil {
		srv.Router().Handle("/metrics", m.Handler())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	url := cfg.BaseURL
	if url == "" {
		url = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is live at %s\n", c.Name, url)
	if serveOpen {
		if err := openBrowser(url); err != nil {
			logger.Warn("could not open browser", zap.Error(err))
		}
	}

	select {
	case err := <-errCh:
		st.Close()
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	// Live sessions hold hijacked connections that Shutdown does not wait for.
	st.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}
