package platforms

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"colloquy/internal/domain"
	"colloquy/internal/domain/models/discussion"
	discussionSvc "colloquy/internal/domain/services/discussion"
)

// validateRecord enforces the minimal adapter contract: every flat-mode
// record must carry a non-empty id. Anything beyond that is handled by the
// engine's graceful degradation.
func validateRecord(rec *discussion.NodeRecord) error {
	if err := validation.ValidateStruct(rec,
		validation.Field(&rec.ID, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// validateThreadInput enforces the thread-level contract: an id and a
// source tag. Titles may be empty; the engine produces a well-formed
// minimal thread for them.
func validateThreadInput(in *discussionSvc.ThreadInput) error {
	if err := validation.ValidateStruct(in,
		validation.Field(&in.ID, validation.Required),
		validation.Field(&in.Source, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(n int) *int {
	return &n
}
