package schedule

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/tripweave/tripweave/pkg/errors"
	"github.com/tripweave/tripweave/pkg/normalize"
)

// Table file names looked up by Load.
const (
	TripFile         = "trip.yaml"
	OverridesFile    = "overrides.yaml"
	InventoryFile    = "inventory.yaml"
	GmailFile        = "gmail.yaml"
	AliasesFile      = "aliases.yaml"
	DescriptionsFile = "descriptions.yaml"
)

// Load reads every input table from the given filesystem. The trip schedule
// itself is required; each side table is optional and an absent file simply
// leaves that table empty (the pipeline degrades per its non-fatal error
// policy).
func Load(fsys fs.FS) (*Tables, error) {
	t := &Tables{}

	data, err := fs.ReadFile(fsys, TripFile)
	if err != nil {
		return nil, errors.WrapIO("read", TripFile, err)
	}
	if err := yaml.Unmarshal(data, &t.Trip); err != nil {
		return nil, errors.WrapParse("yaml", TripFile, err)
	}

	if err := loadOptional(fsys, OverridesFile, &t.Overrides); err != nil {
		return nil, err
	}
	if err := loadOptional(fsys, GmailFile, &t.Gmail); err != nil {
		return nil, err
	}
	if err := loadOptional(fsys, InventoryFile, &t.Inventory); err != nil {
		return nil, err
	}

	var aliases map[string]string
	if err := loadOptional(fsys, AliasesFile, &aliases); err != nil {
		return nil, err
	}
	t.Aliases = normalize.Aliases(aliases)

	if err := loadOptional(fsys, DescriptionsFile, &t.Descriptions); err != nil {
		return nil, err
	}

	return t, nil
}

// loadOptional unmarshals a table file into out. A missing file is okay.
func loadOptional(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil // File doesn't exist is okay
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapParse("yaml", name, err)
	}
	return nil
}
