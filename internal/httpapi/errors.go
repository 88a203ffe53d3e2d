package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aaronromeo/fitgen/internal/llm"
	"github.com/aaronromeo/fitgen/internal/plan"
	"github.com/aaronromeo/fitgen/internal/upstream"
	"github.com/gofiber/fiber/v2"
)

const (
	msgAuth         = "Bad credentials."
	msgRateLimited  = "Rate limited. Please retry."
	msgConnectivity = "Network/connectivity issue."
	msgUpstreamAPI  = "Upstream API error."
	msgUnexpected   = "Unexpected server error."
	msgInvalidSpecs = "Invalid plan specifications."
	msgEmptyPrompt  = "Prompt must not be empty."

	retrySuffix = " Please try again later."
)

// Classify maps a tagged upstream failure to a status code and a client-safe
// message. model names the configured model for not-found errors; subject
// ("workout", "diet", ...) names what the model failed to produce.
func Classify(e *upstream.Error, model, subject string, debugMode bool) (int, string) {
	switch e.Kind {
	case upstream.KindAuth:
		return http.StatusUnauthorized, msgAuth
	case upstream.KindNotFound:
		return http.StatusBadRequest, fmt.Sprintf("Model '%s' not available. Try a different model.", model)
	case upstream.KindRateLimited:
		return http.StatusTooManyRequests, msgRateLimited
	case upstream.KindConnectivity:
		return http.StatusServiceUnavailable, msgConnectivity
	case upstream.KindAPI:
		return http.StatusBadGateway, msgUpstreamAPI
	case upstream.KindContractViolation:
		if debugMode {
			return http.StatusBadGateway, fmt.Sprintf("Model did not return a valid JSON %s plan. Response was: %s", subject, e.Raw)
		}
		return http.StatusBadGateway, fmt.Sprintf("Model did not return a valid %s plan.", subject)
	default:
		return http.StatusInternalServerError, msgUnexpected
	}
}

// publicMessage appends the retry hint outside debug mode.
func (h *handlers) publicMessage(msg string) string {
	if h.cfg.Debug {
		return msg
	}
	return msg + retrySuffix
}

// fail writes the response for any error produced by the plan pipeline.
func (h *handlers) fail(c *fiber.Ctx, subject string, err error) error {
	var verr *plan.ValidationError
	if errors.As(err, &verr) {
		h.logger.Info("rejected plan specifications",
			"subject", subject,
			"error", verr.Error(),
			"http_request_id", requestID(c),
		)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": msgInvalidSpecs, "errors": verr.Fields})
	}
	if errors.Is(err, llm.ErrEmptyPrompt) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": msgEmptyPrompt})
	}

	ue := upstream.From(err)
	status, msg := Classify(ue, h.cfg.LlmModel, subject, h.cfg.Debug)

	attrs := []any{
		"kind", ue.Kind.String(),
		"error", ue.Error(),
		"status", status,
		"subject", subject,
		"http_request_id", requestID(c),
	}
	if ue.StatusCode != 0 {
		attrs = append(attrs, "upstream_status_code", ue.StatusCode)
	}
	if ue.RequestID != "" {
		attrs = append(attrs, "upstream_request_id", ue.RequestID)
	}
	if ue.Kind == upstream.KindContractViolation {
		attrs = append(attrs, "raw", ue.Raw)
	}
	if ue.Kind == upstream.KindUnexpected {
		attrs = append(attrs, "stack", string(debug.Stack()))
	}
	h.logger.Error("plan pipeline failed", attrs...)

	return c.Status(status).JSON(fiber.Map{"message": h.publicMessage(msg)})
}
