package service

import (
	"fmt"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/domain"
)

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("knowledge base validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

// validatedRequest is a PlanRequest whose enums have been checked.
type validatedRequest struct {
	app.PlanRequest
	route      domain.Route
	complexity domain.Complexity
}

func validatePlanRequest(req app.PlanRequest) (validatedRequest, error) {
	route, err := domain.ParseRoute(req.Route)
	if err != nil {
		return validatedRequest{}, &app.PlanError{Code: app.ErrInvalidRoute, Message: err.Error()}
	}
	complexity, err := domain.ParseComplexity(req.Complexity)
	if err != nil {
		return validatedRequest{}, &app.PlanError{Code: app.ErrInvalidComplexity, Message: err.Error()}
	}
	if req.HourlyRate < 0 {
		return validatedRequest{}, &app.PlanError{
			Code:    app.ErrInvalidRate,
			Message: fmt.Sprintf("hourly rate must not be negative, got %d", req.HourlyRate),
		}
	}
	return validatedRequest{PlanRequest: req, route: route, complexity: complexity}, nil
}
