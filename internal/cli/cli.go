package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecomshop/shop-api/internal/bootstrap"
	"github.com/ecomshop/shop-api/internal/category"
	"github.com/ecomshop/shop-api/internal/config"
	"github.com/ecomshop/shop-api/internal/product"
	"github.com/ecomshop/shop-api/internal/router"
	"github.com/ecomshop/shop-api/internal/seeder"
	"github.com/ecomshop/shop-api/internal/shared/cache"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/event"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/ecomshop/shop-api/internal/shared/metrics"
	"github.com/ecomshop/shop-api/internal/shared/validator"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the server command tree.
func NewRootCommand() *cobra.Command {
	var env string

	root := &cobra.Command{
		Use:           "server",
		Short:         "Shop API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(env)
		},
	}
	root.PersistentFlags().StringVar(&env, "env", "local", "Environment (local|dev|prod)")

	root.AddCommand(newServeCmd(&env))
	root.AddCommand(newMigrateCmd(&env))
	root.AddCommand(newSeedCmd(&env))

	// running the binary without a subcommand serves
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), env)
	}
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		slog.Error("명령 실행 실패", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newServeCmd(env *string) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *env)
		},
	}
}

func newMigrateCmd(env *string) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables (--reset drops and recreates them)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(*env, func(cfg *config.Config, db *database.DB) error {
				if reset {
					cfg.Database.IsAutoMigrate = true
					if err := database.Migrate(db.DB, cfg); err != nil {
						return err
					}
				} else if err := database.AutoMigrate(db.DB); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "Drop every table before migrating (refused in prod)")
	return cmd
}

func newSeedCmd(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the sample catalogue when it is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(*env, func(cfg *config.Config, db *database.DB) error {
				seeded, err := newSeeder(db).Catalogue(cmd.Context())
				if err != nil {
					return err
				}
				if seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "seed data applied")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "catalogue already present")
				}
				return nil
			})
		},
	}
}

func withDatabase(env string, fn func(*config.Config, *database.DB) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	return fn(cfg, db)
}

func newSeeder(db *database.DB) *seeder.Seeder {
	return seeder.New(db.DB, category.NewCategoryRepository(), product.NewProductRepository())
}

// serve contains the main application logic
func serve(ctx context.Context, env string) error {
	slog.Info("서버 초기화 시작", "env", env)

	return withDatabase(env, func(cfg *config.Config, db *database.DB) error {
		slog.Info("환경 변수 로드 성공")

		if err := database.Migrate(db.DB, cfg); err != nil {
			return fmt.Errorf("마이그레이션 실패: %w", err)
		}
		if cfg.Database.IsSeed {
			if _, err := newSeeder(db).Catalogue(ctx); err != nil {
				return fmt.Errorf("시드 데이터 생성 실패: %w", err)
			}
		}

		store, err := cache.New(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("캐시 연결 실패: %w", err)
		}
		defer closeQuietly("cache", store.Close)

		publisher := event.New(cfg.Events)
		defer closeQuietly("event publisher", publisher.Close)

		var registry *metrics.Registry
		if cfg.Metrics.Enabled {
			registry = metrics.New()
		}

		srv, err := setupServer(cfg, db, router.Infra{Cache: store, Publisher: publisher, Metrics: registry})
		if err != nil {
			return err
		}

		err = startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
		slog.Info("서버 종료 완료", "env", env)
		return err
	})
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB, infra router.Infra) (*bootstrap.Server, error) {
	boot := bootstrap.NewBootstrap(cfg, infra.Metrics)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	router.Setup(ginEngine, cfg, db, infra)

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
		"cache", cfg.Cache.Driver,
		"events", cfg.Events.Enabled,
		"metrics", cfg.Metrics.Enabled,
	)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and shuts it down when ctx is
// cancelled by a signal
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case <-ctx.Done():
		slog.Info("종료 신호 수신됨")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()

		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}

func closeQuietly(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Error("리소스 종료 실패", "resource", name, "error", err)
	}
}
