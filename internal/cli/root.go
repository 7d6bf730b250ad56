// Package cli implements the quadrec command tree.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/viant/quadrec/catalog"
	"github.com/viant/quadrec/engine"
	"github.com/viant/quadrec/internal/config"
	"github.com/viant/quadrec/internal/logging"
	"github.com/viant/quadrec/projection"
	"github.com/viant/quadrec/recommend"
)

var (
	configPath  string
	catalogPath string
	logLevel    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "quadrec",
	Short: "Recommend similar catalog items",
	Long: `quadrec embeds catalog items as binary attribute vectors, projects them
onto a plane with t-SNE and answers approximate nearest-neighbour queries from a
quadtree over the projected points.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $QUADREC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog CSV path (overrides catalog.path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides log.level)")
}

// Execute runs the root command writing results to stdout.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if catalogPath != "" {
		loaded.Catalog.Path = catalogPath
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	logging.Init(logging.Config{Level: loaded.Log.Level, Format: loaded.Log.Format, Output: cmd.ErrOrStderr()})
	cfg = loaded
	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	items, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	return catalog.New(items...), nil
}

// session is a built recommender and, when store.dsn is set, the database it
// persisted to.
type session struct {
	srv *recommend.Service
	db  *sql.DB
}

func (s *session) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// buildService loads the catalog and builds the recommender, persisting items
// and coordinates to the configured store when store.dsn is set.
func buildService(ctx context.Context) (*session, error) {
	logger := logging.With("recommend")
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	opts := []recommend.Option{
		recommend.WithProjection(projectionOptions(logger)),
		recommend.WithScale(cfg.Projection.ScaleMin, cfg.Projection.ScaleMax),
		recommend.WithMaxDepth(cfg.Index.MaxDepth),
		recommend.WithMaxK(cfg.Recommend.MaxK),
		recommend.WithLogger(logger),
	}
	sess := &session{}
	if cfg.Store.DSN != "" {
		if sess.db, err = engine.Open(cfg.Store.DSN); err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		store, err := catalog.NewSQLiteStore(ctx, sess.db)
		if err != nil {
			sess.Close()
			return nil, err
		}
		opts = append(opts, recommend.WithStore(store))
	}
	sess.srv = recommend.New(opts...)
	if err := sess.srv.Build(ctx, c); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

func projectionOptions(logger zerolog.Logger) projection.Options {
	opts := projection.DefaultOptions()
	opts.Perplexity = cfg.Projection.Perplexity
	opts.LearningRate = cfg.Projection.LearningRate
	opts.Iterations = cfg.Projection.Iterations
	opts.Seed = cfg.Projection.Seed
	if cfg.Projection.Workers > 0 {
		opts.Workers = cfg.Projection.Workers
	}
	opts.Logger = logger
	return opts
}
