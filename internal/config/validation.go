package config

import (
	"fmt"
	"strings"

	"github.com/ironsheep/pnmedit/internal/logging"
	"github.com/ironsheep/pnmedit/internal/pnm"
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{Field: "log.level", Message: err.Error()})
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be text or json, got %q", c.Log.Format),
		})
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{Field: "log.max_size_mb", Message: "must not be negative"})
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, ValidationError{Field: "log.max_backups", Message: "must not be negative"})
	}
	if c.Log.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{Field: "log.max_age_days", Message: "must not be negative"})
	}

	if _, err := pnm.ParseVariant(c.Editor.DefaultSaveFormat); err != nil {
		errs = append(errs, ValidationError{Field: "editor.default_save_format", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
