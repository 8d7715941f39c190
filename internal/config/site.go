package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds the static values consumed by the documentation engine.
type SiteConfig struct {
	NeedsSphinx      string             `yaml:"needs_sphinx"`
	Extensions       []string           `yaml:"extensions"`
	Extlinks         map[string]Extlink `yaml:"extlinks"`
	TemplatesPath    []string           `yaml:"templates_path"`
	SourceSuffix     []string           `yaml:"source_suffix"`
	MasterDoc        string             `yaml:"master_doc"`
	Project          string             `yaml:"project"`
	Copyright        string             `yaml:"copyright"`
	Author           string             `yaml:"author"`
	Version          string             `yaml:"version,omitempty"`
	Release          string             `yaml:"release,omitempty"`
	Language         string             `yaml:"language,omitempty"`
	TodayFmt         string             `yaml:"today_fmt"`
	ExcludePatterns  []string           `yaml:"exclude_patterns"`
	DefaultRole      string             `yaml:"default_role"`
	PygmentsStyle    string             `yaml:"pygments_style"`
	TodoIncludeTodos bool               `yaml:"todo_include_todos"`
	HTML             HTMLConfig         `yaml:"html"`
	Latex            []LatexDocument    `yaml:"latex_documents"`
}

// Extlink maps a short role name to an external URL pattern containing %s.
type Extlink struct {
	BaseURL string `yaml:"base_url"`
	Prefix  string `yaml:"prefix"`
}

// HTMLConfig represents HTML output options
type HTMLConfig struct {
	Theme          string              `yaml:"theme"`
	Style          string              `yaml:"style"`
	ThemeOptions   map[string]any      `yaml:"theme_options"`
	ShortTitle     string              `yaml:"short_title"`
	Favicon        string              `yaml:"favicon"`
	StaticPath     []string            `yaml:"static_path"`
	Sidebars       map[string][]string `yaml:"sidebars"`
	LastUpdatedFmt string              `yaml:"last_updated_fmt"`
	DomainIndices  bool                `yaml:"domain_indices"`
	UseIndex       bool                `yaml:"use_index"`
}

// LatexDocument groups the document tree into one LaTeX file.
type LatexDocument struct {
	Source        string `yaml:"source"`
	Target        string `yaml:"target"`
	Title         string `yaml:"title"`
	Author        string `yaml:"author"`
	DocumentClass string `yaml:"document_class"`
}

// WriteSiteConfig writes the resolved site values as YAML for the documentation engine.
func WriteSiteConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(&cfg.Site)
	if err != nil {
		return fmt.Errorf("failed to marshal site config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create site config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write site config: %w", err)
	}
	return nil
}
