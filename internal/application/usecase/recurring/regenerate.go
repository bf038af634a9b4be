// Package recurring contains the recurring-transaction materialization engine.
package recurring

import (
	"context"

	"github.com/google/uuid"
)

// RegenerateInput represents the input for regenerating a recurring template.
type RegenerateInput struct {
	UserID     uuid.UUID
	TemplateID uuid.UUID
}

// RegenerateOutput represents the output of regenerating a recurring template.
type RegenerateOutput struct {
	Deleted int64
	Created int
}

// RegenerateUseCase rebuilds the materialized instances of a template after an
// edit: every old instance is retracted, then the window is expanded again.
// There is no partial patching of individual instances.
type RegenerateUseCase struct {
	retract     *RetractUseCase
	materialize *MaterializeUseCase
}

// NewRegenerateUseCase creates a new RegenerateUseCase instance.
func NewRegenerateUseCase(retract *RetractUseCase, materialize *MaterializeUseCase) *RegenerateUseCase {
	return &RegenerateUseCase{
		retract:     retract,
		materialize: materialize,
	}
}

// Execute performs the regeneration.
func (uc *RegenerateUseCase) Execute(ctx context.Context, input RegenerateInput) (*RegenerateOutput, error) {
	retracted, err := uc.retract.Execute(ctx, RetractInput{UserID: input.UserID, TemplateID: input.TemplateID})
	if err != nil {
		return nil, err
	}

	materialized, err := uc.materialize.Execute(ctx, MaterializeInput{UserID: input.UserID, TemplateID: input.TemplateID})
	if err != nil {
		return nil, err
	}

	return &RegenerateOutput{
		Deleted: retracted.Deleted,
		Created: materialized.Created,
	}, nil
}
