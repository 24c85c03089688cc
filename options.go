package tripweave

import (
	"io/fs"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tripweave/tripweave/pkg/patch"
	"github.com/tripweave/tripweave/pkg/schedule"
)

// Option is a function that configures a Tripweave instance.
type Option func(*config) error

// config holds the assembled configuration.
type config struct {
	dataFS     fs.FS
	tables     *schedule.Tables
	baseURL    string
	rules      []patch.Rule
	httpClient *http.Client
	logger     *zerolog.Logger
}

func newConfig() *config {
	return &config{
		rules: patch.Rules(),
	}
}

// WithDataFS loads the input tables from the given filesystem instead of
// the compiled-in dataset.
func WithDataFS(fsys fs.FS) Option {
	return func(c *config) error {
		c.dataFS = fsys
		return nil
	}
}

// WithTables uses already-loaded tables, skipping file loading entirely.
func WithTables(tables *schedule.Tables) Option {
	return func(c *config) error {
		c.tables = tables
		return nil
	}
}

// WithBaseURL sets the asset root used when building attachment URLs.
// Defaults to "/".
func WithBaseURL(baseURL string) Option {
	return func(c *config) error {
		c.baseURL = baseURL
		return nil
	}
}

// WithPatchRules replaces the built-in patch rule list.
func WithPatchRules(rules ...patch.Rule) Option {
	return func(c *config) error {
		c.rules = rules
		return nil
	}
}

// WithoutPatches disables patch rules entirely.
func WithoutPatches() Option {
	return WithPatchRules()
}

// WithHTTPClient sets the HTTP client used for attachment probing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		c.httpClient = client
		return nil
	}
}

// WithLogger sets the logger used for pipeline and probe diagnostics.
// Defaults to the package-level logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
