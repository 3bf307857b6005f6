package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
	"github.com/goto/tagger/internal/server"
	"github.com/goto/tagger/internal/store"
	"github.com/goto/tagger/internal/store/file"
	"github.com/goto/tagger/internal/store/github"
)

func cmdServe(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Serve the HTTP API and web UI",
		Long:    heredoc.Doc(`Serve the JSON API and the browser UI on one port.`),
		Aliases: []string{"server", "start"},
		Example: heredoc.Doc(`
			$ tagger serve
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigFromFlag(cmd, cfg); err != nil {
				return err
			}
			return runServer(*cfg)
		},
	}
}

func runServer(cfg Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := initLogger(cfg.LogLevel)
	logger.Info("tagger starting", "version", Version)

	backend, err := initStorage(ctx, logger, cfg.Storage)
	if err != nil {
		return err
	}

	assetService := asset.NewService(logger, store.NewAssetRepository(backend))
	referenceService := reference.NewService(logger, store.NewReferenceRepository(backend))

	return server.Serve(ctx, cfg.Service, logger, assetService, referenceService)
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}

// initStorage picks the backend once at startup. With usable GitHub
// credentials the remote store becomes the source of truth with the local
// store as mirror; otherwise, or when the repository is unreachable, the
// local store serves alone. Missing credentials are a fallback, not an
// error.
func initStorage(ctx context.Context, logger log.Logger, cfg StorageConfig) (store.Backend, error) {
	local, err := file.NewStore(cfg.Local)
	if err != nil {
		return nil, err
	}

	if !cfg.GitHub.Enabled() {
		logger.Info("using local storage (no github token found)", "dir", cfg.Local.Dir)
		return local, nil
	}

	remote, err := github.NewStore(cfg.GitHub)
	if err != nil {
		logger.Warn("github storage misconfigured, using local storage", "err", err)
		return local, nil
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := remote.Ping(pingCtx); err != nil {
		logger.Warn("github connection failed, using local storage", "repository", cfg.GitHub.Repository, "err", err)
		return local, nil
	}

	logger.Info("connected to github repository", "repository", cfg.GitHub.Repository)
	return store.NewDualWriter(logger, remote, local), nil
}

func loadConfigFromFlag(cmd *cobra.Command, cfg *Config) error {
	cfgFile, _ := cmd.Flags().GetString(configFlag)
	if cfgFile == "" {
		return nil
	}
	return LoadConfigFromFlag(cfgFile, cfg)
}
