package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/just3days/backend/internal/config"
	"github.com/just3days/backend/internal/handlers"
	"github.com/just3days/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	challengeHandler *handlers.ChallengeHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Protected auth routes registered at api level so the strict public
	// limiter does not apply to them
	api.Get("/auth/users", middleware.JWTProtected(cfg), authHandler.GetProfile)
	api.Post("/auth/nickname", middleware.JWTProtected(cfg), authHandler.UpdateNickname)

	// Challenges — all protected
	challenges := api.Group("/challenges", middleware.JWTProtected(cfg))
	challenges.Post("/", challengeHandler.Create)
	challenges.Get("/", challengeHandler.List)
	challenges.Get("/:id", challengeHandler.Get)
	challenges.Post("/:id/proof", challengeHandler.UploadProof)
	challenges.Post("/:id/reset", challengeHandler.Reset)
	challenges.Post("/:id/complete", challengeHandler.Complete)
	challenges.Get("/:id/proof/:dayIndex", challengeHandler.GetProof)
	challenges.Delete("/:id", challengeHandler.Delete)
}
