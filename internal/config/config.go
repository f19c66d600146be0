// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"

	"github.com/alexflint/go-arg"

	"github.com/joe/filescan/pkg/filesystem"
	"github.com/joe/filescan/pkg/scanner"
)

// MatchKind says which kind of match rule a run uses.
type MatchKind int

const (
	// MatchEverything - no rule given, every eligible file matches
	MatchEverything MatchKind = iota
	// MatchPatterns - regular expressions over the file name
	MatchPatterns
	// MatchGlobs - doublestar globs over the name or relative path
	MatchGlobs
	// MatchExtensions - file name extensions
	MatchExtensions
)

// String returns the string representation of MatchKind
func (k MatchKind) String() string {
	switch k {
	case MatchEverything:
		return "everything"
	case MatchPatterns:
		return "pattern"
	case MatchGlobs:
		return "glob"
	case MatchExtensions:
		return "ext"
	default:
		return "unknown"
	}
}

// Validation errors returned by PostProcessConfig.
var (
	ErrConflictingRules = errors.New("only one of --pattern, --glob and --ext may be given")
	ErrNegativeLines    = errors.New("--lines must not be negative")
)

// Config holds the application configuration
type Config struct {
	Root        string   `arg:"positional" help:"Directory to scan: a local path or sftp://user@host[:port]/path"`
	Patterns    []string `arg:"-p,--pattern,separate" help:"Regular expression the whole file name must match (repeatable)"`
	Globs       []string `arg:"-g,--glob,separate" help:"Glob over the name, or over the relative path if it contains / (repeatable)"`
	Extensions  []string `arg:"-e,--ext,separate" help:"File extension such as .log (repeatable)"`
	Recursive   bool     `arg:"-R,--recursive" help:"Scan the whole tree instead of direct children only"`
	Dirs        bool     `arg:"--dirs" help:"Include directories in the results"`
	Sort        bool     `arg:"-s,--sort" help:"Sort results by path"`
	Lines       int      `arg:"-n,--lines" default:"0" help:"Print the first N lines of each match"`
	Interactive bool     `arg:"-i,--interactive" help:"Browse results in a terminal UI"`
	Verbose     bool     `arg:"-v,--verbose" help:"Log debug information to stderr"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Scan a directory tree for files matching a rule and show their metadata"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "filescan 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{Root: "."}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if cfg.Lines < 0 {
		return nil, ErrNegativeLines
	}

	if _, err := cfg.Kind(); err != nil {
		return nil, err
	}

	if err := cfg.ValidateRoot(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateRoot checks that the root is a local path or a well-formed SFTP
// URL. Whether the root exists is left to the scan, which treats a missing
// root as an empty result.
func (cfg *Config) ValidateRoot() error {
	if _, err := filesystem.ParsePath(cfg.Root); err != nil {
		return fmt.Errorf("invalid root %q: %w", cfg.Root, err)
	}

	return nil
}

// Kind returns the match kind selected by the flags.
func (cfg *Config) Kind() (MatchKind, error) {
	kind := MatchEverything
	given := 0

	if len(cfg.Patterns) > 0 {
		kind = MatchPatterns
		given++
	}

	if len(cfg.Globs) > 0 {
		kind = MatchGlobs
		given++
	}

	if len(cfg.Extensions) > 0 {
		kind = MatchExtensions
		given++
	}

	if given > 1 {
		return MatchEverything, ErrConflictingRules
	}

	return kind, nil
}

// BuildMatcher compiles the configured rules. Malformed patterns and globs
// fail with ErrInvalidPattern naming the rule.
func (cfg *Config) BuildMatcher() (scanner.Matcher, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case MatchPatterns:
		return scanner.Patterns(cfg.Patterns...) //nolint:wrapcheck // Already carries the rule
	case MatchGlobs:
		return scanner.Globs(cfg.Globs...) //nolint:wrapcheck // Already carries the rule
	case MatchExtensions:
		return scanner.Extensions(cfg.Extensions...), nil
	default:
		return scanner.MatchAll, nil
	}
}

// ScannerOptions returns the scanner options implied by the flags.
func (cfg *Config) ScannerOptions(fsys filesystem.FileSystem) []scanner.Option {
	opts := []scanner.Option{scanner.WithFileSystem(fsys)}
	if cfg.Dirs {
		opts = append(opts, scanner.WithDirectories())
	}

	return opts
}
