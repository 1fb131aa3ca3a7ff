package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shinji-kodama/guessing-game/internal/model"
)

// ValidationError represents a specific validation failure in a Config.
type ValidationError struct {
	// Field is the setting that failed validation (e.g., "max").
	Field string

	// Message describes what's wrong with the value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate checks cfg and returns every problem found (empty = valid).
//
// Checks performed:
//   - min and max must fit in a signed 32-bit integer, the widest guess a
//     player can type
//   - max must be strictly greater than min, otherwise the half-open secret
//     range [min, max) would be empty
//   - logLevel must be a level zerolog understands
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	for _, b := range []struct {
		field string
		value int
	}{{"min", cfg.Min}, {"max", cfg.Max}} {
		if b.value < math.MinInt32 || b.value > math.MaxInt32 {
			errs = append(errs, ValidationError{
				Field:   b.field,
				Message: fmt.Sprintf("must be between %d and %d, got %d", math.MinInt32, math.MaxInt32, b.value),
			})
		}
	}

	if cfg.Max <= cfg.Min {
		errs = append(errs, ValidationError{
			Field:   "max",
			Message: fmt.Sprintf("must be greater than min (min=%d, max=%d)", cfg.Min, cfg.Max),
		})
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		errs = append(errs, ValidationError{
			Field:   "logLevel",
			Message: fmt.Sprintf("unknown level %q", cfg.LogLevel),
		})
	}

	return errs
}

// Check runs Validate and folds any problems into a single CLIError with
// ExitConfigInvalid. It returns nil for a valid configuration.
func Check(cfg *Config) error {
	errs := Validate(cfg)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return model.NewCLIError(model.ExitConfigInvalid,
		"invalid configuration: "+strings.Join(msgs, "; "))
}
