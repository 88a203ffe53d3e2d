package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/aaronromeo/fitgen/internal/config"
	"github.com/aaronromeo/fitgen/internal/plan"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// Generator is the plan pipeline the routes drive.
type Generator interface {
	GenerateWorkout(ctx context.Context, spec plan.WorkoutSpec) (plan.WorkoutPlan, error)
	GenerateDiet(ctx context.Context, spec plan.DietSpec) (plan.DietPlan, error)
	Ask(ctx context.Context, prompt string) (string, error)
}

type handlers struct {
	cfg    *config.Config
	logger *slog.Logger
	gen    Generator
}

func NewServer(cfg *config.Config, logger *slog.Logger, gen Generator) *fiber.App {
	h := &handlers{cfg: cfg, logger: logger, gen: gen}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          cfg.LlmTimeout + 30*time.Second,
		BodyLimit:             cfg.BodyLimitBytes,
		ErrorHandler:          h.errorHandler,
	})
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogging(logger))
	app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: h.logPanic,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Accept",
	}))

	registerHealth(app, cfg)
	registerPlans(app, h)
	registerAsk(app, h)
	return app
}

func registerHealth(app *fiber.App, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	// Never echo the key itself.
	app.Get("/debug/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":      true,
			"has_key": cfg.OpenaiKey != "",
			"model":   cfg.LlmModel,
			"debug":   cfg.Debug,
		})
	})
}

// errorHandler renders framework errors (unknown route, body too large,
// recovered panics) in the same {"message": ...} shape as the routes.
func (h *handlers) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	h.logger.Error("unhandled error",
		"error", err.Error(),
		"path", c.Path(),
		"http_request_id", requestID(c),
	)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": h.publicMessage(msgUnexpected)})
}

// logPanic runs inside the recover middleware's deferred call, so the
// stack still holds the panicking frame.
func (h *handlers) logPanic(c *fiber.Ctx, e interface{}) {
	h.logger.Error("panic recovered",
		"panic", fmt.Sprint(e),
		"path", c.Path(),
		"http_request_id", requestID(c),
		"stack", string(debug.Stack()),
	)
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(requestIDKey).(string); ok {
		return v
	}
	return ""
}
