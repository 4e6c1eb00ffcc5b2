package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/relaxviz/internal/logging"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks every section and returns all problems joined. Generator
// problems also match generator.ErrConstraintUnsatisfiable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}
	var errs []error

	if err := cfg.Generator.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: generator: %w", ErrInvalid, err))
	}
	if cfg.Engine.StepDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: engine.step_delay must be non-negative, got %v", ErrInvalid, cfg.Engine.StepDelay))
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		errs = append(errs, fmt.Errorf("%w: server.addr is required", ErrInvalid))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalid, err))
	}
	if !logging.ValidFormat(cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, cfg.Log.Format))
	}

	return errors.Join(errs...)
}
