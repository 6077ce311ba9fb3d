package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "postboard/docs"
	"postboard/internal/events"
	"postboard/internal/routes"
	"postboard/internal/services"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runServe(cmd.Context(), rootOpts, cfg.Port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, opts *RootOptions, port string) error {
	cfg, logger := opts.cfg, opts.logger
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, err := openStore(connectCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	// Ensure that a user can like a target only once.
	if err := store.Migrate(connectCtx); err != nil {
		return fmt.Errorf("ensure indexes failed: %w", err)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.NATSURL != "" {
		nc, err := events.Connect(cfg.NATSURL, cfg.NATSPrefix, logger)
		if err != nil {
			return err
		}
		defer nc.Close()
		publisher = nc
	}

	deps := services.Deps{
		Store:  store,
		Events: publisher,
		Logger: logger,
		Paging: services.Paging{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize},
	}

	app := routes.NewApp(logger)
	routes.Setup(app, routes.Deps{
		Posts:     services.NewPostService(deps),
		Comments:  services.NewCommentService(deps),
		Likes:     services.NewLikeService(deps),
		Auth:      services.NewAuthService(deps, cfg.JWTSecret, cfg.TokenTTL),
		JWTSecret: cfg.JWTSecret,
		MediaRoot: cfg.MediaRoot,
		Timeout:   cfg.RequestTimeout,
		Logger:    logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "port", port)
		errCh <- app.Listen(":" + port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
