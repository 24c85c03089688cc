package schedule

import (
	"github.com/goccy/go-yaml"
)

// StringOrList is a field that the source tables encode either as a single
// string or as a list of strings. It always unmarshals to a list; a scalar
// becomes a one-element list and an absent field stays nil.
type StringOrList []string

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (s *StringOrList) UnmarshalYAML(data []byte) error {
	var single string
	if err := yaml.Unmarshal(data, &single); err == nil {
		*s = StringOrList{single}
		return nil
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = StringOrList(list)
	return nil
}

// IsZero reports whether the field was absent or empty.
func (s StringOrList) IsZero() bool {
	return len(s) == 0
}

// Joined returns the items joined by commas, the form the link parser and
// flight extractor operate on.
func (s StringOrList) Joined() string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return s[0]
	}
	out := s[0]
	for _, item := range s[1:] {
		out += "," + item
	}
	return out
}
