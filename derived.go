package respctx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Derived getters parse well-known headers on demand. They are best-effort:
// an absent or malformed header degrades to a zero value, never an error,
// so one bad header cannot abort a filter.

// AllowedMethods parses the Allow header into uppercase method tokens,
// trimmed and de-duplicated. The slice is empty if the header is absent.
func (rc *ResponseContext) AllowedMethods() []string {
	methods := make([]string, 0)
	seen := make(map[string]bool)
	for _, value := range rc.headers.Values("Allow") {
		for _, token := range strings.Split(value, ",") {
			method := strings.ToUpper(strings.TrimSpace(token))
			if method == "" || seen[method] {
				continue
			}
			seen[method] = true
			methods = append(methods, method)
		}
	}
	return methods
}

// Date returns the message date, or the zero time if the Date header is
// absent or not an HTTP-date.
func (rc *ResponseContext) Date() time.Time {
	return rc.dateHeader("Date")
}

// LastModified returns the Last-Modified date, or the zero time on absence
// or parse failure.
func (rc *ResponseContext) LastModified() time.Time {
	return rc.dateHeader("Last-Modified")
}

func (rc *ResponseContext) dateHeader(name string) time.Time {
	value := rc.headers.Get(name)
	if value == "" {
		return time.Time{}
	}
	date, err := http.ParseTime(value)
	if err != nil {
		return time.Time{}
	}
	return date
}

// Language returns the entity language from the Content-Language header.
// When the header lists several languages, the first one is returned.
func (rc *ResponseContext) Language() (language.Tag, bool) {
	value := rc.headers.Get("Content-Language")
	if value == "" {
		return language.Und, false
	}
	first, _, _ := strings.Cut(value, ",")
	tag, err := language.Parse(strings.TrimSpace(first))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Length returns the Content-Length value, or -1 if the header is absent
// or not a valid non-negative integer.
func (rc *ResponseContext) Length() int64 {
	value := rc.headers.Get("Content-Length")
	if value == "" {
		return -1
	}
	length, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || length < 0 {
		return -1
	}
	return length
}

// MediaType returns the parsed Content-Type, or nil if absent or malformed.
func (rc *ResponseContext) MediaType() *MediaType {
	value := rc.headers.Get("Content-Type")
	if value == "" {
		return nil
	}
	mediaType, err := ParseMediaType(value)
	if err != nil {
		return nil
	}
	return mediaType
}

// Cookies returns the cookies set on the response, keyed by name.
// The map is a fresh snapshot per call; mutating it does not touch the
// Set-Cookie headers.
func (rc *ResponseContext) Cookies() map[string]*http.Cookie {
	cookies := make(map[string]*http.Cookie)
	res := http.Response{Header: rc.headers}
	for _, cookie := range res.Cookies() {
		cookies[cookie.Name] = cookie
	}
	return cookies
}

// EntityTag returns the parsed ETag header, or nil on absence or a value
// that does not follow the entity-tag grammar.
func (rc *ResponseContext) EntityTag() *EntityTag {
	value := rc.headers.Get("Etag")
	if value == "" {
		return nil
	}
	tag, err := ParseEntityTag(value)
	if err != nil {
		return nil
	}
	return tag
}

// Location returns the Location header as a URI, or nil on absence or an
// unparsable value.
func (rc *ResponseContext) Location() *url.URL {
	value := rc.headers.Get("Location")
	if value == "" {
		return nil
	}
	location, err := url.Parse(value)
	if err != nil {
		return nil
	}
	return location
}
