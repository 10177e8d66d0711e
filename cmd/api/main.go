package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/xarthos/portfolio-server/internal/auth"
	"github.com/xarthos/portfolio-server/internal/config"
	"github.com/xarthos/portfolio-server/internal/db"
	gql "github.com/xarthos/portfolio-server/internal/graphql"
	"github.com/xarthos/portfolio-server/internal/mail"
	"github.com/xarthos/portfolio-server/internal/user"
)

// allowedOrigins lists the clients permitted to send credentialed
// requests.
var allowedOrigins = []string{
	"http://localhost:3000",
	"https://studio.apollographql.com",
	"https://arthos-portfolio.vercel.app",
	"https://portfolio-client-5uac1fbso-xarthos.vercel.app",
	"https://portfolio-client-xarthos.vercel.app",
}

// main wires dependencies and starts the HTTP server.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	provider := db.NewProvider(cfg.DatabaseURL)
	users := user.NewPostgresRepository(provider)

	issuer := auth.NewIssuer(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	sessions := auth.NewCookieWriter(issuer, cfg.CookieMaxAge, cfg.Development(), logger)
	validator := &mail.Checker{HeloHost: cfg.SMTPCheckHost, From: cfg.SMTPCheckFrom}
	service := auth.NewService(users, provider, validator, sessions, cfg.VerifyCredentials, logger)

	handler, err := gql.NewHandler(gql.NewResolver(service), users, logger)
	if err != nil {
		logger.Fatal("parse schema", zap.Error(err))
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))
	app.Use("/graphql", jwtware.New(jwtware.Config{
		SigningKey:  []byte(cfg.AccessTokenSecret),
		TokenLookup: "cookie:" + auth.CookieName,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			// resolvers treat a missing or invalid session as anonymous
			return c.Next()
		},
	}))
	handler.RegisterRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Connect eagerly so the first request does not pay for it; the
	// provider stays lazy when the database is down at boot.
	if err := provider.Ensure(context.Background()); err != nil {
		logger.Warn("database not reachable at startup", zap.Error(err))
	} else if err := users.EnsureSchema(context.Background()); err != nil {
		logger.Warn("ensure users schema", zap.Error(err))
	}

	logger.Info("server ready", zap.String("addr", cfg.Addr()))
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	if cfg.Development() {
		l, _ := zap.NewDevelopment()
		return l
	}
	l, _ := zap.NewProduction()
	return l
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ", "),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Cookie",
		AllowCredentials: true,
		MaxAge:           84600,
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logger.Debug("request", zap.String("method", c.Method()), zap.String("url", c.OriginalURL()))
		return c.Next()
	}
}
