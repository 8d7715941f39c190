package config

import "git.home.luguber.info/inful/scriptdoc/internal/buildmeta"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// defaultAppliers run in order; later domains may rely on earlier ones.
var defaultAppliers = []DefaultApplier{
	&ScriptsDefaultApplier{},
	&OutputDefaultApplier{},
	&SiteDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

// ScriptsDefaultApplier handles Scripts configuration defaults.
type ScriptsDefaultApplier struct{}

func (s *ScriptsDefaultApplier) Domain() string { return "scripts" }

func (s *ScriptsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Scripts.Root == "" {
		cfg.Scripts.Root = "scripts"
	}
	if cfg.Scripts.IncludeRoot == "" {
		cfg.Scripts.IncludeRoot = "scripts"
	}
	// nil means unset; an explicit empty list disables exclusion.
	if cfg.Scripts.Exclude == nil {
		cfg.Scripts.Exclude = []string{"3rdparty/**"}
	}
	if cfg.BuildMetadata == "" {
		cfg.BuildMetadata = buildmeta.DefaultFile
	}
	return nil
}

// OutputDefaultApplier handles Output configuration defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "docs/_auto"
	}
	if cfg.Output.SiteFile == "" {
		cfg.Output.SiteFile = "docs/_auto/site.yaml"
	}
	return nil
}

// SiteDefaultApplier fills documentation engine values.
type SiteDefaultApplier struct{}

func (d *SiteDefaultApplier) Domain() string { return "site" }

func (d *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	s := &cfg.Site
	setString(&s.NeedsSphinx, "1.3")
	if s.Extensions == nil {
		s.Extensions = []string{"sphinx.ext.extlinks"}
	}
	if s.Extlinks == nil {
		s.Extlinks = defaultExtlinks()
	}
	if s.TemplatesPath == nil {
		s.TemplatesPath = []string{}
	}
	if s.SourceSuffix == nil {
		s.SourceSuffix = []string{".rst"}
	}
	setString(&s.MasterDoc, "index")
	setString(&s.Project, "DFHack")
	setString(&s.Author, "The DFHack Team")
	setString(&s.Copyright, "2015, "+s.Author)
	setString(&s.TodayFmt, "%Y-%m-%d")
	if s.ExcludePatterns == nil {
		s.ExcludePatterns = []string{
			"README.md",
			"docs/html*",
			"depends/*",
			"scripts/3rdparty/*",
			"build*",
		}
	}
	setString(&s.DefaultRole, "ref")
	setString(&s.PygmentsStyle, "sphinx")

	h := &s.HTML
	setString(&h.Theme, "alabaster")
	setString(&h.Style, "dfhack.css")
	if h.ThemeOptions == nil {
		h.ThemeOptions = map[string]any{
			"github_user":   "DFHack",
			"github_repo":   "dfhack",
			"github_button": false,
			"travis_button": false,
		}
	}
	setString(&h.ShortTitle, s.Project+" Docs")
	setString(&h.Favicon, "docs/styles/dfhack-icon.ico")
	if h.StaticPath == nil {
		h.StaticPath = []string{"docs/styles"}
	}
	if h.Sidebars == nil {
		h.Sidebars = map[string][]string{
			"**": {"about.html", "relations.html", "searchbox.html", "localtoc.html"},
		}
	}
	setString(&h.LastUpdatedFmt, s.TodayFmt)

	if s.Latex == nil {
		s.Latex = []LatexDocument{{
			Source:        s.MasterDoc,
			Target:        s.Project + ".tex",
			Title:         s.Project + " Documentation",
			Author:        s.Author,
			DocumentClass: "manual",
		}}
	}
	return nil
}

func defaultExtlinks() map[string]Extlink {
	return map[string]Extlink{
		"wiki":   {BaseURL: "http://dwarffortresswiki.org/%s"},
		"forums": {BaseURL: "http://www.bay12forums.com/smf/index.php?topic=%s", Prefix: "Bay12 forums thread "},
		"dffd":   {BaseURL: "http://dffd.bay12games.com/file.php?id=%s", Prefix: "DFFD file "},
		"bug":    {BaseURL: "http://www.bay12games.com/dwarves/mantisbt/view.php?id=%s", Prefix: "Bug "},
		"issue":  {BaseURL: "https://github.com/DFHack/dfhack/issues/%s", Prefix: "Issue "},
		"commit": {BaseURL: "https://github.com/DFHack/dfhack/commit/%s", Prefix: "Commit "},
	}
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}
