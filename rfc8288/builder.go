package rfc8288

import (
	"net/url"
	"strings"
)

// Builder builds or rewrites a link one attribute at a time.
type Builder struct {
	link Link
	err  error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{link: Link{Params: make(map[string]string)}}
}

// Builder returns a builder seeded with a copy of the link, so building
// does not mutate the original.
func (l Link) Builder() *Builder {
	params := make(map[string]string, len(l.Params))
	for name, value := range l.Params {
		params[name] = value
	}
	return &Builder{link: Link{URI: l.URI, Rel: l.Rel, Params: params}}
}

func (b *Builder) URI(uri *url.URL) *Builder {
	b.link.URI = uri
	return b
}

// URIString parses and sets the target URI. A parse failure is reported
// by Build.
func (b *Builder) URIString(raw string) *Builder {
	uri, err := url.Parse(raw)
	if err != nil {
		b.err = err
		return b
	}
	b.link.URI = uri
	return b
}

func (b *Builder) Rel(rel string) *Builder {
	b.link.Rel = rel
	return b
}

func (b *Builder) Title(title string) *Builder {
	return b.Param("title", title)
}

func (b *Builder) Type(mediaType string) *Builder {
	return b.Param("type", mediaType)
}

func (b *Builder) Param(name, value string) *Builder {
	b.link.Params[strings.ToLower(name)] = value
	return b
}

func (b *Builder) Build() (Link, error) {
	return b.link, b.err
}
