// Command portfolio serves the portfolio site, exports it as static HTML and
// checks its content records.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kz.dev/internal/config"
	"kz.dev/internal/content"
	"kz.dev/internal/generation"
	"kz.dev/internal/handlers"
	"kz.dev/internal/i18n"
	"kz.dev/internal/linksafe"
	"kz.dev/internal/server"
	"kz.dev/internal/telemetry"
)

var (
	// Global flags
	verbose  bool
	envFile  string
	dataPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Portfolio site server and static exporter",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("data") {
			cfg.DataPath = dataPath
		}

		logger, err = telemetry.NewLogger(verbose || cfg.Debug())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  runServe,
	}
)

var (
	outDir     string
	exportLang string

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Render every page and lightbox frame to static HTML",
		RunE:  runGenerate,
	}
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate content records and audit external links",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before the environment")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Content directory (overrides KZ_DATA_PATH; empty uses embedded content)")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides KZ_HTTP_ADDR)")

	generateCmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	generateCmd.Flags().StringVar(&exportLang, "lang", "", "Language to render (default language when empty)")

	rootCmd.AddCommand(serveCmd, generateCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// site loads the content and catalogs and builds the router. static renders
// pages for a static host.
func site(static bool) (*content.Store, http.Handler, error) {
	store, err := content.Open(cfg.DataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load content: %w", err)
	}
	bundle, err := i18n.LoadEmbedded(cfg.DefaultLang)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalogs: %w", err)
	}
	router := handlers.SetupRoutes(handlers.Deps{
		Config: cfg,
		Store:  store,
		Bundle: bundle,
		Logger: logger,
		Static: static,
	})
	return store, router, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("addr") {
		cfg.ServerAddr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTelEndpoint, cfg.Environment)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	flush, err := telemetry.SetupSentry(cfg.SentryDSN, cfg.Environment)
	if err != nil {
		return err
	}
	defer flush()

	_, router, err := site(false)
	if err != nil {
		return err
	}

	logger.Info("starting portfolio",
		zap.String("addr", cfg.ServerAddr),
		zap.String("environment", cfg.Environment),
		zap.Bool("embedded_content", cfg.DataPath == ""),
	)
	return server.New(cfg.ServerAddr, router, cfg.ShutdownTimeout, logger).ListenAndServe(ctx)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// exporting is local work; no limiter in front of the handler
	cfg.RateLimit = 0
	store, router, err := site(true)
	if err != nil {
		return err
	}

	exporter := generation.NewExporter(router, generation.Options{
		OutDir:  outDir,
		Lang:    exportLang,
		SiteURL: cfg.SiteURL,
	}, logger)
	res, err := exporter.Export(ctx, generation.Routes(store.Projects()))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages and %d assets to %s\n", res.Pages, res.Assets, outDir)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	store, err := content.Open(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("content check failed: %w", err)
	}

	problems := linksafe.Audit(store.ExternalLinks())
	labels := make([]string, 0, len(problems))
	for label := range problems {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		logger.Warn("unsafe external link", zap.String("where", label), zap.Error(problems[label]))
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", label, problems[label])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d projects, %d unsafe links\n", len(store.Projects()), len(problems))
	if len(problems) > 0 {
		return fmt.Errorf("%d unsafe external links", len(problems))
	}
	return nil
}
