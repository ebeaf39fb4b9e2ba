package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/leadflow/intake/pkg/services"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handleServiceError maps the service error taxonomy onto problem responses.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			problem := problems.NewStatusProblem(400).
				WithInstance(c.Path()).
				WithType("validation_error").
				WithDetail("one or more fields failed validation")

			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"type":   problem.Type,
				"title":  problem.Title,
				"status": problem.Status,
				"detail": problem.Detail,
				"errors": validationErr.Fields,
			})
		}

		return badRequest(c, err.Error())

	case services.IsNotFoundError(err):
		return notFound(c, err.Error())

	case services.IsRateLimitError(err):
		problem := problems.NewStatusProblem(429).
			WithInstance(c.Path()).
			WithType("rate_limited").
			WithDetail("generation quota exhausted, try again later")

		return c.Status(fiber.StatusTooManyRequests).JSON(problem)

	case services.IsUpstreamError(err):
		problem := problems.NewStatusProblem(502).
			WithInstance(c.Path()).
			WithType("generation_failed").
			WithDetail("text generation upstream failed")

		return c.Status(fiber.StatusBadGateway).JSON(problem)

	default:
		return internalError(c, err)
	}
}
