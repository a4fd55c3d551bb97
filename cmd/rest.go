package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zanyar-dev/botarium/core/config"
	uiRest "github.com/zanyar-dev/botarium/ui/rest"
	"github.com/zanyar-dev/botarium/ui/rest/middleware"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the bot catalog API over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

// fiberConfig builds the server config. Trusted proxy checking is only
// enabled when proxies are configured, so c.IP() (rate limiting) keeps
// resolving the direct peer otherwise.
func fiberConfig(cfg *config.Config) fiber.Config {
	return fiber.Config{
		Network:                 "tcp",
		AppName:                 "Botarium Catalog API",
		DisableStartupMessage:   false,
		ServerHeader:            "Hidden",
		EnableTrustedProxyCheck: len(cfg.App.TrustedProxies) > 0,
		TrustedProxies:          cfg.App.TrustedProxies,
	}
}

func restServer(_ *cobra.Command, _ []string) {
	cfg := config.Global

	app := fiber.New(fiberConfig(cfg))

	app.Use(requestid.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.App.CorsAllowedOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Locale, X-User-Id, X-Request-ID",
	}))
	app.Use(middleware.Recovery())

	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        1000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.App.Debug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(cfg.App.BasePath + "/api")

	// Optional extra fence in front of the API; identity for
	// authorization still comes from the X-User-Id header.
	if len(cfg.App.BasicAuth) > 0 {
		account := make(map[string]string)
		for _, ba := range cfg.App.BasicAuth {
			credential := strings.Split(ba, ":")
			if len(credential) != 2 {
				logrus.Fatalln("Basic auth is not valid, please use the format <user>:<secret>")
			}
			account[credential[0]] = credential[1]
		}
		apiGroup.Use(basicauth.New(basicauth.Config{
			Users: account,
			Next: func(c *fiber.Ctx) bool {
				// Allow CORS preflight without credentials.
				return c.Method() == fiber.MethodOptions
			},
		}))
	}

	apiGroup.Use(middleware.Locale())
	apiGroup.Use(middleware.Identity())

	uiRest.InitRestBot(apiGroup, botUsecase, cfg.App.PerPage, cfg.App.AdminPerPage)
	uiRest.InitRestCache(apiGroup, cacheUsecase)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[APP] Shutdown signal received")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start server:", err)
	}

	StopApp()
}
