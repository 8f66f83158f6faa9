// Package respctx provides a mutable view over one received HTTP response.
// A client runtime constructs a ResponseContext after receiving a response
// and hands it to its response filters one at a time; each filter may read
// and rewrite the status, headers and entity stream before the caller sees
// the response.
package respctx

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// Filter is one client-side response filter. Filters run sequentially
// and mutate the context in place.
type Filter func(*ResponseContext) error

// ResponseContext holds one received response while filters run.
// It is not safe for concurrent use: filters visit it strictly one at a time.
//
// The context never closes the entity stream. Whichever stream is current
// when the filters are done belongs to the runtime, which must close it.
type ResponseContext struct {
	status  int
	reason  string
	headers http.Header
	entity  io.ReadCloser
}

// New returns an empty context with status unset (-1) and an empty,
// mutable header map.
func New() *ResponseContext {
	return &ResponseContext{
		status:  -1,
		headers: http.Header{},
	}
}

// FromResponse wraps a received response. The context adopts the response's
// header map directly (not a copy), so mutations through Headers are visible
// on the response as well.
func FromResponse(res *http.Response) *ResponseContext {
	rc := &ResponseContext{
		status:  res.StatusCode,
		headers: res.Header,
		entity:  res.Body,
	}
	if rc.status == 0 {
		rc.status = -1
	}
	if rc.headers == nil {
		rc.headers = http.Header{}
	}
	// keep the reason phrase from the status line, e.g. "200 OK"
	if _, reason, found := strings.Cut(res.Status, " "); found {
		rc.reason = reason
	}
	return rc
}

// Status returns the response status code, or -1 if the status was never set.
func (rc *ResponseContext) Status() int {
	return rc.status
}

// SetStatus sets a new response status code.
func (rc *ResponseContext) SetStatus(code int) {
	rc.status = code
	rc.reason = ""
}

// StatusInfo returns the structured status, or nil if the status is unset.
func (rc *ResponseContext) StatusInfo() *StatusInfo {
	if rc.status == -1 {
		return nil
	}
	reason := rc.reason
	if reason == "" {
		reason = http.StatusText(rc.status)
	}
	return &StatusInfo{Code: rc.status, Reason: reason}
}

// SetStatusInfo sets the status code and reason phrase together.
// A subsequent Status call returns info.Code. Passing nil resets the
// status to unset.
func (rc *ResponseContext) SetStatusInfo(info *StatusInfo) {
	if info == nil {
		rc.status = -1
		rc.reason = ""
		return
	}
	rc.status = info.Code
	rc.reason = info.Reason
}

// Headers returns the live header map, never nil and never a copy.
// Filters mutate it directly; all derived getters recompute from it,
// so mutations are always reflected.
func (rc *ResponseContext) Headers() http.Header {
	return rc.headers
}

// HeaderString returns the header value as a single string, joining
// multiple values with a comma. The second return is false if the header
// is absent; a present header with a single empty value yields "".
func (rc *ResponseContext) HeaderString(name string) (string, bool) {
	return rc.HeaderJoined(name, ",")
}

// HeaderJoined is HeaderString with a caller-chosen separator.
func (rc *ResponseContext) HeaderJoined(name, separator string) (string, bool) {
	values, ok := rc.headers[http.CanonicalHeaderKey(name)]
	if !ok {
		return "", false
	}
	return strings.Join(values, separator), true
}

// ContainsHeaderString reports whether the named header has a value
// matching the predicate. The joined header value is split by the given
// separator regexp and each token is trimmed of whitespace before
// matching; the whole trimmed value is tried as well. An empty regexp
// means no splitting. Absent headers and invalid regexps yield false.
//
// ContainsHeaderString("Cache-Control", ",", match) matches header value
// "Max-Age, NO-STORE, no-transform" for a case-insensitive "no-store"
// predicate, but not "no-store;no-transform" (no comma) and not
// "no - store" (whitespace inside the token).
func (rc *ResponseContext) ContainsHeaderString(name, separatorRegex string, match func(string) bool) bool {
	joined, ok := rc.HeaderString(name)
	if !ok {
		return false
	}
	if match(strings.TrimSpace(joined)) {
		return true
	}
	if separatorRegex == "" {
		return false
	}
	re, err := regexp.Compile(separatorRegex)
	if err != nil {
		return false
	}
	for _, token := range re.Split(joined, -1) {
		if match(strings.TrimSpace(token)) {
			return true
		}
	}
	return false
}

// ContainsHeader is ContainsHeaderString with a comma separator.
func (rc *ResponseContext) ContainsHeader(name string, match func(string) bool) bool {
	return rc.ContainsHeaderString(name, ",", match)
}

// HasEntity reports whether an entity stream is present and non-empty.
// The check peeks at the stream without consuming it.
func (rc *ResponseContext) HasEntity() bool {
	if rc.entity == nil {
		return false
	}
	peeker, ok := rc.entity.(*peekCloser)
	if !ok {
		peeker = newPeekCloser(rc.entity)
		rc.entity = peeker
	}
	head, _ := peeker.r.Peek(1)
	return len(head) > 0
}

// EntityStream returns the current entity stream, or nil if none is set.
// The runtime, not the context, is responsible for closing it.
func (rc *ResponseContext) EntityStream() io.ReadCloser {
	return rc.entity
}

// SetEntityStream replaces the entity stream. The previous stream is not
// closed; a filter swapping streams takes over the old one, and the runtime
// closes whichever stream is current once the filters are done.
func (rc *ResponseContext) SetEntityStream(stream io.ReadCloser) {
	rc.entity = stream
}

// ApplyTo writes the context's status, headers and current entity stream
// back onto a response, for runtimes that hand the response on after the
// filters ran.
func (rc *ResponseContext) ApplyTo(res *http.Response) {
	if rc.status != -1 {
		res.StatusCode = rc.status
		reason := rc.reason
		if reason == "" {
			reason = http.StatusText(rc.status)
		}
		res.Status = fmt.Sprintf("%d %s", rc.status, reason)
	}
	res.Header = rc.headers
	res.Body = rc.entity
	res.ContentLength = rc.Length()
}

// peekCloser lets HasEntity look at the first byte of the stream without
// losing it for later readers.
type peekCloser struct {
	r *bufio.Reader
	c io.Closer
}

func newPeekCloser(stream io.ReadCloser) *peekCloser {
	return &peekCloser{
		r: bufio.NewReader(stream),
		c: stream,
	}
}

func (p *peekCloser) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

func (p *peekCloser) Close() error {
	return p.c.Close()
}
