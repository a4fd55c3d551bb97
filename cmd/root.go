package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zanyar-dev/botarium/core/config"
	"github.com/zanyar-dev/botarium/core/database"
	domainBot "github.com/zanyar-dev/botarium/domains/bot"
	domainCache "github.com/zanyar-dev/botarium/domains/cache"
	"github.com/zanyar-dev/botarium/domains/identity"
	"github.com/zanyar-dev/botarium/infrastructure/valkey"
	"github.com/zanyar-dev/botarium/pkg/utils"
	"github.com/zanyar-dev/botarium/repository"
	"github.com/zanyar-dev/botarium/usecase"
	"gorm.io/gorm"
)

var (
	db *gorm.DB

	// Usecase
	botUsecase   domainBot.IBotUsecase
	cacheUsecase domainCache.ICacheUsecase

	valkeyClient *valkey.Client

	// Flags
	flagPort  string
	flagDebug bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "botarium",
	Short: "Telegram bot catalog API",
	Long:  `Public catalog and admin dashboard API for listing Telegram bots.`,
}

func init() {
	// Load environment variables first
	utils.LoadEnv(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initApp)
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&flagPort,
		"port", "p",
		"",
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagDebug,
		"debug", "d",
		false,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
}

func initApp() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Environment overrides picked up by viper (AutomaticEnv), then flags.
	if envPort := viper.GetString("app_port"); envPort != "" {
		cfg.App.Port = envPort
	}
	if viper.GetBool("app_debug") {
		cfg.App.Debug = true
	}
	if flagPort != "" {
		cfg.App.Port = flagPort
	}
	if flagDebug {
		cfg.App.Debug = true
	}

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cfg.Admin.UserID == "" {
		logrus.Warn("[APP] ADMIN_USER_ID is not set; every mutation will be rejected as unauthorized")
	}

	db, err = database.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}

	ctx := context.Background()

	botRepo := repository.NewBotGormRepository(db)
	if err := botRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("failed to init bots schema: %v", err)
	}

	policy := identity.NewSingleAdminPolicy(cfg.Admin.UserID)
	mediaUsecase := usecase.NewMediaService(cfg)

	botUsecase = usecase.NewBotService(botRepo, policy, mediaUsecase, cfg.App.PerPage, cfg.App.PerPage)

	cacheStore := newCacheStore(cfg)
	if cfg.Cache.Enabled {
		botUsecase = usecase.NewCachedBotService(botUsecase, cacheStore)
	}
	cacheUsecase = usecase.NewCacheService(cacheStore, policy)
}

// newCacheStore picks the cache backend: shared Valkey when enabled
// and reachable, in-process memory otherwise.
func newCacheStore(cfg *config.Config) domainCache.Store {
	if cfg.Cache.ValkeyEnabled {
		client, err := valkey.NewClient(valkey.Config{
			Address:   cfg.Cache.ValkeyAddress,
			Password:  cfg.Cache.ValkeyPassword,
			DB:        cfg.Cache.ValkeyDB,
			KeyPrefix: cfg.Cache.ValkeyKeyPrefix,
		})
		if err != nil {
			logrus.WithError(err).Warn("[CACHE] valkey unavailable, falling back to memory store")
		} else {
			valkeyClient = client
			return repository.NewValkeyCacheStore(client, cfg.Cache.StaleWindow)
		}
	}
	return repository.NewMemoryCacheStore(cfg.Cache.StaleWindow)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp performs a clean shutdown of database and cache connections.
func StopApp() {
	logrus.Info("[APP] Stopping application...")

	if valkeyClient != nil {
		valkeyClient.Close()
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	logrus.Info("[APP] Application stopped cleanly.")
}
