package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateScripts(); err != nil {
		return err
	}
	if err := cv.validateOutput(); err != nil {
		return err
	}
	return cv.validateSite()
}

func (cv *configurationValidator) validateScripts() error {
	s := cv.config.Scripts
	if strings.TrimSpace(s.Root) == "" {
		return fmt.Errorf("%w: scripts.root must not be empty", ErrInvalidConfig)
	}
	for _, pat := range s.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("%w: scripts.exclude pattern %q is malformed", ErrInvalidConfig, pat)
		}
	}
	return nil
}

func (cv *configurationValidator) validateOutput() error {
	if strings.TrimSpace(cv.config.Output.Directory) == "" {
		return fmt.Errorf("%w: output.directory must not be empty", ErrInvalidConfig)
	}
	return nil
}

func (cv *configurationValidator) validateSite() error {
	for name, link := range cv.config.Site.Extlinks {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: site.extlinks has an empty role name", ErrInvalidConfig)
		}
		if strings.Count(link.BaseURL, "%s") != 1 {
			return fmt.Errorf("%w: site.extlinks.%s base_url must contain exactly one %%s", ErrInvalidConfig, name)
		}
	}
	return nil
}
