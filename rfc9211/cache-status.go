// Package rfc9211 serializes the Cache-Status response header field.
package rfc9211

import (
	"fmt"
	"strconv"
)

// §  2.  The Cache-Status HTTP Response Header Field
// §
// §     The Cache-Status HTTP response header field indicates caches'
// §     handling of the request corresponding to the response it occurs
// §     within.
// §
// §     Its value is a List:
// §
// §     Cache-Status   = sf-list
// §
// §     Each member of the list represents a cache that has handled the
// §     request.  The first member represents the cache closest to the
// §     origin server, and the last member represents the cache closest to
// §     the user.

type FwdReason string

const (
	// The cache was configured to not handle this request.
	FwdReasonBypass FwdReason = "bypass"

	// The request method's semantics require the request to be forwarded.
	FwdReasonMethod FwdReason = "method"

	// The cache did not contain any responses that matched the request URI.
	FwdReasonUriMiss FwdReason = "uri-miss"

	// The cache contained a response that matched the request URI, but it
	// could not select a response based upon this request's header fields
	// and stored Vary header fields.
	FwdReasonVaryMiss FwdReason = "vary-miss"

	// The cache did not contain any responses that could be used to
	// satisfy this request.
	FwdReasonMiss FwdReason = "miss"

	// The cache was able to select a fresh response for the request, but
	// the request's semantics did not allow its use.
	FwdReasonRequest FwdReason = "request"

	// The cache was able to select a response for the request, but it was
	// stale.
	FwdReasonStale FwdReason = "stale"

	// The cache was able to select a partial response for the request, but
	// it did not contain all of the requested ranges.
	FwdReasonPartial FwdReason = "partial"
)

// CacheStatus is one list member of the Cache-Status field: how one cache
// handled the request.
type CacheStatus struct {
	// Name identifies the cache, e.g. its product name.
	Name string

	hit       bool
	fwdReason FwdReason
	fwdStatus int
	ttl       *int
	stored    bool
	key       string
	detail    string
}

// Hit marks the response as served from cache without going forward.
func (cs *CacheStatus) Hit() {
	cs.hit = true
	cs.fwdReason = ""
}

// Forward records that the request went forward towards the origin, and why.
func (cs *CacheStatus) Forward(reason FwdReason) {
	cs.hit = false
	cs.fwdReason = reason
}

// ForwardStatus records the status code the next hop returned.
func (cs *CacheStatus) ForwardStatus(code int) {
	cs.fwdStatus = code
}

// TTL records the remaining freshness lifetime in seconds; it may be
// negative for a stale hit.
func (cs *CacheStatus) TTL(seconds int) {
	cs.ttl = &seconds
}

// Stored records that a forwarded response was stored in the cache.
func (cs *CacheStatus) Stored() {
	cs.stored = true
}

// Key records the cache key used for this request.
func (cs *CacheStatus) Key(key string) {
	cs.key = key
}

// Detail attaches implementation-specific additional information.
func (cs *CacheStatus) Detail(detail string) {
	cs.detail = detail
}

// String serializes the member per the sf-list grammar, e.g.
// `respctx; fwd=uri-miss; stored` or `respctx; hit; ttl=376`.
func (cs *CacheStatus) String() string {
	name := cs.Name
	if name == "" {
		name = "cache"
	}
	out := name
	if cs.hit {
		out += "; hit"
	} else if cs.fwdReason != "" {
		out += "; fwd=" + string(cs.fwdReason)
	}
	if cs.fwdStatus != 0 {
		out += "; fwd-status=" + strconv.Itoa(cs.fwdStatus)
	}
	if cs.ttl != nil {
		out += "; ttl=" + strconv.Itoa(*cs.ttl)
	}
	if cs.stored {
		out += "; stored"
	}
	if cs.key != "" {
		out += fmt.Sprintf("; key=%q", cs.key)
	}
	if cs.detail != "" {
		out += "; detail=" + cs.detail
	}
	return out
}
