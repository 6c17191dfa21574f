package main

import (
	"context"
	"log/slog"

	"github.com/mdobak/go-xerrors"
	"github.com/spf13/cobra"

	"winequality/internal/config"
	"winequality/internal/logging"
	"winequality/pkg/artifact"
	"winequality/pkg/pipeline"
)

type env struct {
	cfg    config.Config
	logger *slog.Logger
	store  *artifact.Store
	pipe   *pipeline.Pipeline
}

// setup resolves configuration, builds the logger and loads the artifacts.
// A load failure is fatal: no command runs without all three artifacts.
func setup(cmd *cobra.Command, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	for dst, v := range map[*string]string{
		&cfg.ArtifactDir: flags.artifactDir,
		&cfg.Imputer:     flags.imputer,
		&cfg.Scaler:      flags.scaler,
		&cfg.Model:       flags.model,
		&cfg.Log.Level:   flags.logLevel,
		&cfg.Log.Format:  flags.logFormat,
	} {
		if v != "" {
			*dst = v
		}
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	paths := cfg.ArtifactPaths()
	store, err := artifact.Load(paths)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load artifacts", slog.Any("error", xerrors.New(err)))
		return nil, err
	}
	logger.InfoContext(ctx, "artifacts loaded",
		slog.String("imputer", paths.Imputer),
		slog.String("scaler", paths.Scaler),
		slog.String("model", paths.Model),
	)

	return &env{
		cfg:    cfg,
		logger: logger,
		store:  store,
		pipe:   pipeline.New(store, pipeline.WithLogger(logger)),
	}, nil
}
