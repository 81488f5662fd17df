package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/soumacoisa/backend/internal/config"
	"github.com/soumacoisa/backend/internal/handlers"
	"github.com/soumacoisa/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	meHandler *handlers.MeHandler,
	todayHandler *handlers.TodayHandler,
	historyHandler *handlers.HistoryHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: register/login are public with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", middleware.JWTProtected(cfg), authHandler.Refresh)

	// Everything below requires a bearer token
	jwt := middleware.JWTProtected(cfg)

	api.Get("/me", jwt, meHandler.Get)
	api.Patch("/me", jwt, meHandler.Patch)

	api.Get("/today", jwt, todayHandler.Get)
	api.Post("/today", jwt, todayHandler.Post)
	api.Patch("/today/complete", jwt, todayHandler.Complete)
	api.Patch("/today/skip", jwt, todayHandler.Skip)

	api.Get("/history/recent", jwt, historyHandler.Recent)
	api.Get("/history", jwt, historyHandler.Month)
}
