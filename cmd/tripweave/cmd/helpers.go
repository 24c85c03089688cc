package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	tripweave "github.com/tripweave/tripweave"
)

// newTripweave builds a Tripweave instance from the global flags and
// config.
func newTripweave() (tripweave.Tripweave, error) {
	var opts []tripweave.Option

	if dir := resolvedDataDir(); dir != "" {
		opts = append(opts, tripweave.WithDataFS(os.DirFS(dir)))
	}
	if base := resolvedBaseURL(); base != "" {
		opts = append(opts, tripweave.WithBaseURL(base))
	}

	return tripweave.New(opts...)
}

func resolvedDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	return viper.GetString("data")
}

func resolvedBaseURL() string {
	if baseURL != "" {
		return baseURL
	}
	return viper.GetString("base-url")
}

// printStructured writes v to stdout as JSON or YAML.
func printStructured(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
