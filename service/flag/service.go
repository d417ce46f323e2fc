package flag

import (
	"github.com/spf13/pflag"

	"github.com/nurokhq/tagcheck/model"
)

// Default input paths, matching the project layout this tool gates releases
// for. All three can be overridden by flags or the config file.
const (
	DefaultManifest   = "pyproject.toml"
	DefaultModuleFile = "a2ui_pydantic/__init__.py"
	DefaultDocs       = "README.md"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags. The release tag
// is expected as the single positional argument; arity is validated by the
// caller so that usage errors print the usage text rather than a flag error.
func (s *service) GetParsedFlags() (model.Flags, error) {
	manifest := pflag.StringP("manifest", "m", DefaultManifest, "Path to the packaging manifest file")
	moduleFile := pflag.String("module-file", DefaultModuleFile, "Path to the module file declaring __version__")
	docs := pflag.StringP("docs", "d", DefaultDocs, "Path to the documentation file (advisory check)")
	output := pflag.StringP("output", "o", "table", "Output format (table or json)")
	scan := pflag.Bool("scan", false, "Scan the repository for stale version strings (advisory)")
	scanDir := pflag.String("scan-dir", ".", "Directory to walk for the stale-version scan")
	store := pflag.Bool("store", false, "Persist the verification result in the local SQLite history")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.tagcheck/history.db)")
	configPath := pflag.String("config-path", "", "Path to a tagcheck config file (default .tagcheck.toml)")
	version := pflag.BoolP("version", "v", false, "Show version information")
	noBanner := pflag.Bool("no-banner", false, "Suppress the banner title")

	pflag.Parse()

	args := pflag.Args()

	flags := model.Flags{
		Args:       args,
		Manifest:   *manifest,
		ModuleFile: *moduleFile,
		Docs:       *docs,
		Output:     *output,
		Scan:       *scan,
		ScanDir:    *scanDir,
		Store:      *store,
		DBPath:     *dbPath,
		ConfigPath: *configPath,
		Version:    *version,
		NoBanner:   *noBanner,
	}
	if len(args) == 1 {
		flags.Tag = args[0]
	}

	// Record which path flags were given explicitly, so config-file values
	// only fill in the ones still at their defaults.
	flags.ManifestSet = pflag.CommandLine.Changed("manifest")
	flags.ModuleFileSet = pflag.CommandLine.Changed("module-file")
	flags.DocsSet = pflag.CommandLine.Changed("docs")

	return flags, nil
}
