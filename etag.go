package respctx

import (
	"fmt"
	"strings"
)

// EntityTag is a parsed ETag header value.
type EntityTag struct {
	// Value is the opaque tag without the surrounding quotes.
	Value string
	// Weak marks a W/ prefixed tag.
	Weak bool
}

// ParseEntityTag parses an entity-tag, either strong (`"v1"`) or
// weak (`W/"v1"`).
func ParseEntityTag(value string) (*EntityTag, error) {
	tag := EntityTag{}
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "W/") {
		tag.Weak = true
		value = value[2:]
	}
	if len(value) < 2 || !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		return nil, fmt.Errorf("entity tag not quoted: %q", value)
	}
	tag.Value = value[1 : len(value)-1]
	return &tag, nil
}

func (t *EntityTag) String() string {
	if t.Weak {
		return `W/"` + t.Value + `"`
	}
	return `"` + t.Value + `"`
}
