package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/aaronromeo/fitgen/internal/id"
	"github.com/aaronromeo/fitgen/internal/plan"
	"github.com/gofiber/fiber/v2"
	yaml "gopkg.in/yaml.v3"
)

const mimeYAML = "application/yaml"

func registerPlans(app *fiber.App, h *handlers) {
	g := app.Group("/generate_plan")

	g.Post("/workout", func(c *fiber.Ctx) error {
		spec, err := plan.DecodeWorkoutRequest(c.Body())
		if err != nil {
			return h.fail(c, "workout", err)
		}
		h.logger.Info("generating workout plan", "spec", id.PlanTag("workout", spec), "http_request_id", requestID(c))

		wp, err := h.gen.GenerateWorkout(c.UserContext(), spec)
		if err != nil {
			return h.fail(c, "workout", err)
		}
		return respond(c, "workout_plan", wp)
	})

	g.Post("/diet", func(c *fiber.Ctx) error {
		spec, err := plan.DecodeDietRequest(c.Body())
		if err != nil {
			return h.fail(c, "diet", err)
		}
		h.logger.Info("generating diet plan", "spec", id.PlanTag("diet", spec), "http_request_id", requestID(c))

		dp, err := h.gen.GenerateDiet(c.UserContext(), spec)
		if err != nil {
			return h.fail(c, "diet", err)
		}
		return respond(c, "diet_plan", dp)
	})
}

func registerAsk(app *fiber.App, h *handlers) {
	app.Post("/ask", func(c *fiber.Ctx) error {
		var in struct {
			Prompt string `json:"prompt"`
		}
		if err := json.Unmarshal(c.Body(), &in); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "invalid json: " + err.Error()})
		}

		out, err := h.gen.Ask(c.UserContext(), in.Prompt)
		if err != nil {
			return h.fail(c, "ask", err)
		}
		return c.JSON(fiber.Map{"response": out})
	})
}

// respond writes {key: v} as JSON, or as YAML when the client prefers it.
func respond(c *fiber.Ctx, key string, v any) error {
	body := map[string]any{key: v}
	if c.Accepts(fiber.MIMEApplicationJSON, mimeYAML) != mimeYAML {
		return c.JSON(body)
	}
	b, err := yaml.Marshal(body)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, mimeYAML)
	return c.Send(b)
}
