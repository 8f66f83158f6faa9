package respctx

import (
	"mime"
	"strings"
)

// Wildcard matches any type or subtype in a media type.
const Wildcard = "*"

// MediaType is a parsed Content-Type value.
type MediaType struct {
	Type    string
	Subtype string
	// Params holds the media type parameters with lowercase names,
	// e.g. "charset".
	Params map[string]string
}

// ParseMediaType parses a media type per the MIME grammar.
// A bare type with no subtype gets the wildcard subtype.
func ParseMediaType(value string) (*MediaType, error) {
	fullType, params, err := mime.ParseMediaType(value)
	if err != nil {
		return nil, err
	}
	mainType, subType, found := strings.Cut(fullType, "/")
	if !found {
		subType = Wildcard
	}
	return &MediaType{
		Type:    mainType,
		Subtype: subType,
		Params:  params,
	}, nil
}

func (m *MediaType) String() string {
	return mime.FormatMediaType(m.Type+"/"+m.Subtype, m.Params)
}

// Compatible reports whether the two media types match, treating the
// wildcard on either side as matching anything. Parameters are ignored.
func (m *MediaType) Compatible(other *MediaType) bool {
	if other == nil {
		return false
	}
	typeMatch := m.Type == Wildcard || other.Type == Wildcard ||
		strings.EqualFold(m.Type, other.Type)
	subtypeMatch := m.Subtype == Wildcard || other.Subtype == Wildcard ||
		strings.EqualFold(m.Subtype, other.Subtype)
	return typeMatch && subtypeMatch
}
