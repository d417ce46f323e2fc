package model

// Flags represents the command line flags for a verification run.
type Flags struct {
	Tag        string
	Args       []string
	Manifest   string
	ModuleFile string
	Docs       string
	Output     string
	Scan       bool
	ScanDir    string
	Store      bool
	DBPath     string
	ConfigPath string
	Version    bool
	NoBanner   bool

	ManifestSet   bool
	ModuleFileSet bool
	DocsSet       bool
}
