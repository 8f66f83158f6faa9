package filtercache

import (
	"strconv"
	"strings"
	"time"
)

// CacheControl holds the parsed directives of a Cache-Control header.
// Directive names are compared case-insensitively; arguments may use
// token or quoted-string syntax.
type CacheControl struct {
	directives map[string]string
}

func (c CacheControl) Get(directive string) (string, bool) {
	val, ok := c.directives[directive]
	return val, ok
}

func (c CacheControl) HasDirective(directive string) bool {
	_, ok := c.Get(directive)
	return ok
}

// MaxAge returns the max-age directive as a duration, if present and valid.
func (c CacheControl) MaxAge() (time.Duration, bool) {
	val, ok := c.Get("max-age")
	if !ok {
		return 0, false
	}
	seconds, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

// ParseCacheControl takes Cache-Control headers as a slice of strings
// and returns an instance of CacheControl.
func ParseCacheControl(headers []string) CacheControl {
	m := make(map[string]string)
	// note setting map values like this means last defined directive wins
	for _, header := range headers {
		for _, directive := range strings.Split(header, ",") {
			parts := strings.SplitN(strings.TrimSpace(directive), "=", 2)
			name := strings.ToLower(parts[0])
			var arg string
			if len(parts) > 1 {
				arg = strings.Trim(parts[1], "\"")
			}
			m[name] = arg
		}
	}
	return CacheControl{m}
}
