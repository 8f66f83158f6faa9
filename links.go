package respctx

import "github.com/respctx/respctx/rfc8288"

// Links returns the parsed Link header values. The slice is empty, never
// nil, when no Link header is present.
func (rc *ResponseContext) Links() []rfc8288.Link {
	return rfc8288.ParseLinks(rc.headers.Values("Link"))
}

// HasLink reports whether a link with the given relation exists.
func (rc *ResponseContext) HasLink(relation string) bool {
	return rc.Link(relation) != nil
}

// Link returns the link for the given relation, or nil if not present.
// A link whose rel attribute lists several relations matches each of them.
func (rc *ResponseContext) Link(relation string) *rfc8288.Link {
	for _, link := range rc.Links() {
		for _, rel := range link.Rels() {
			if rel == relation {
				found := link
				return &found
			}
		}
	}
	return nil
}

// LinkBuilder returns a builder seeded from the link for the given
// relation, or nil if not present.
func (rc *ResponseContext) LinkBuilder(relation string) *rfc8288.Builder {
	link := rc.Link(relation)
	if link == nil {
		return nil
	}
	return link.Builder()
}
