// Package inventory turns the raw attachment inventory into display-ready
// attachments and resolves which folder backs a given activity.
package inventory

import (
	"github.com/tripweave/tripweave/pkg/normalize"
	"github.com/tripweave/tripweave/pkg/schedule"
)

// Attachment is one display-ready file reference.
type Attachment struct {
	// File is the exact stored file name.
	File string `json:"file" yaml:"file"`

	// Label is the friendly name derived from the file name.
	Label string `json:"label" yaml:"label"`

	// URL is the public asset URL.
	URL string `json:"url" yaml:"url"`
}

// Folder holds the display-ready attachments of one inventory folder, in
// stored order.
type Folder struct {
	PDF []Attachment `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	QR  []Attachment `json:"qr,omitempty" yaml:"qr,omitempty"`
}

// Set is the processed inventory: attachments by folder plus the activity
// key to folder bridge.
type Set struct {
	folders map[string]Folder
	keyMap  map[string]string
}

// DefaultBaseURL is the asset root used when no base URL is configured.
const DefaultBaseURL = "/"

// assetPrefix is the path under the base URL where folders live.
const assetPrefix = "itinerary-assets"

// Build processes the raw inventory. Every file gets a label and a public
// URL under baseURL; every folder maps to itself as an activity key, then
// the manual bridge entries overwrite the mismatched ones.
func Build(raw schedule.Inventory, baseURL string) *Set {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	s := &Set{
		folders: make(map[string]Folder, len(raw.Folders)),
		keyMap:  make(map[string]string, len(raw.Folders)+len(raw.ManualFolders)),
	}

	for name, f := range raw.Folders {
		var out Folder
		for _, file := range f.PDF {
			out.PDF = append(out.PDF, Attachment{
				File:  file,
				Label: Label(file),
				URL:   AssetURL(baseURL, name, file),
			})
		}
		for _, file := range f.QR {
			out.QR = append(out.QR, Attachment{
				File:  file,
				Label: Label(file),
				URL:   AssetURL(baseURL, name, file),
			})
		}
		s.folders[name] = out
		s.keyMap[name] = name
	}

	for key, folder := range raw.ManualFolders {
		s.keyMap[key] = folder
	}

	return s
}

// Key builds the folder lookup key for an activity: the zero-padded date
// joined to the full (aliased) title.
func Key(date, title string) string {
	return normalize.Date(date) + "__" + title
}

// Lookup resolves the folder backing the given activity key. The second
// return is false when no folder matches.
func (s *Set) Lookup(key string) (Folder, bool) {
	name, ok := s.keyMap[key]
	if !ok {
		return Folder{}, false
	}
	f, ok := s.folders[name]
	return f, ok
}

// Folder returns a folder's attachments by its storage name.
func (s *Set) Folder(name string) (Folder, bool) {
	f, ok := s.folders[name]
	return f, ok
}

// Folders returns the storage names of every folder. Order is unspecified.
func (s *Set) Folders() []string {
	names := make([]string, 0, len(s.folders))
	for name := range s.folders {
		names = append(names, name)
	}
	return names
}

// Count returns the total number of files in the folder.
func (f Folder) Count() int {
	return len(f.PDF) + len(f.QR)
}

// AssetURL builds the public URL of one stored file. Folder and file names
// are percent-encoded per segment; baseURL gains a trailing slash when it
// lacks one.
func AssetURL(baseURL, folder, file string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	return baseURL + assetPrefix + "/" +
		normalize.EscapeComponent(folder) + "/" +
		normalize.EscapeComponent(file)
}
