package rfc8288

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// §  3.  Link Serialisation in HTTP Headers
// §
// §     The Link header field provides a means for serialising one or more
// §     links into HTTP headers.
// §
// §     Link       = #link-value
// §     link-value = "<" URI-Reference ">" *( OWS ";" OWS link-param )
// §     link-param = token BWS [ "=" BWS ( token / quoted-string ) ]

// Link is one parsed link-value.
type Link struct {
	URI *url.URL
	// Rel is the raw rel attribute; it may list several relation types
	// separated by spaces.
	Rel string
	// Params holds the remaining target attributes with lowercase names.
	Params map[string]string
}

// Rels returns the individual relation types of the rel attribute.
func (l Link) Rels() []string {
	return strings.Fields(l.Rel)
}

func (l Link) Title() string {
	return l.Params["title"]
}

func (l Link) Type() string {
	return l.Params["type"]
}

// Param returns the named target attribute, or "" if not present.
func (l Link) Param(name string) string {
	return l.Params[strings.ToLower(name)]
}

// String serialises the link as a link-value suitable for a Link header.
func (l Link) String() string {
	var b strings.Builder
	b.WriteString("<")
	if l.URI != nil {
		b.WriteString(l.URI.String())
	}
	b.WriteString(">")
	if l.Rel != "" {
		fmt.Fprintf(&b, "; rel=%q", l.Rel)
	}
	// sort for stable output
	names := make([]string, 0, len(l.Params))
	for name := range l.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "; %s=%q", name, l.Params[name])
	}
	return b.String()
}

// ParseLinks parses Link header values into links. Parsing is best effort:
// malformed link-values are skipped, so the result is never an error.
func ParseLinks(values []string) []Link {
	links := make([]Link, 0)
	for _, value := range values {
		for _, member := range splitOutsideQuotes(value, ',') {
			if link, err := parseLink(member); err == nil {
				links = append(links, link)
			}
		}
	}
	return links
}

func parseLink(member string) (Link, error) {
	link := Link{Params: make(map[string]string)}
	member = strings.TrimSpace(member)
	if !strings.HasPrefix(member, "<") {
		return link, fmt.Errorf("link-value without URI: %q", member)
	}
	end := strings.IndexByte(member, '>')
	if end < 0 {
		return link, fmt.Errorf("unterminated URI reference: %q", member)
	}
	uri, err := url.Parse(member[1:end])
	if err != nil {
		return link, err
	}
	link.URI = uri
	for _, param := range splitOutsideQuotes(member[end+1:], ';') {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}
		name, value, _ := strings.Cut(param, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if name == "rel" {
			// §  ...  occurrences of the rel parameter after the first
			// §  MUST be ignored by parsers.
			if link.Rel == "" {
				link.Rel = value
			}
			continue
		}
		if _, ok := link.Params[name]; !ok {
			link.Params[name] = value
		}
	}
	return link, nil
}

// splitOutsideQuotes splits on sep, but not inside a <> delimited URI
// reference or a quoted-string.
func splitOutsideQuotes(value string, sep byte) []string {
	parts := make([]string, 0)
	var inURI, inQuote bool
	start := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '<':
			if !inQuote {
				inURI = true
			}
		case '>':
			if !inQuote {
				inURI = false
			}
		case '"':
			if !inURI && (i == 0 || value[i-1] != '\\') {
				inQuote = !inQuote
			}
		case sep:
			if !inURI && !inQuote {
				parts = append(parts, value[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, value[start:])
}
