// Package filtercache provides a write-through response caching filter.
// Responses that are fresh per their Cache-Control max-age are stored in a
// cache.Provider in HTTP/1.1 wire form, and the handling is reported on
// the context via an RFC 9211 Cache-Status header.
package filtercache

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/respctx/respctx"
	"github.com/respctx/respctx/cache"
	"github.com/respctx/respctx/rfc9211"
)

const (
	headerName  = "Cache-Status"
	defaultName = "respctx"
)

type Config struct {
	// Cache stores the serialized responses.
	Cache cache.Provider
	// Name identifies this cache in the Cache-Status header.
	// Defaults to "respctx".
	Name string
}

func (cfg Config) name() string {
	if cfg.Name == "" {
		return defaultName
	}
	return cfg.Name
}

// New returns a filter that stores the response under the given key.
// The key is per request, so the runtime constructs a filter per response,
// usually from the request URL.
func New(cfg Config, key string) respctx.Filter {
	return func(rc *respctx.ResponseContext) error {
		return store(cfg, key, rc)
	}
}

func store(cfg Config, key string, rc *respctx.ResponseContext) error {
	status := rfc9211.CacheStatus{Name: cfg.name()}
	status.Forward(rfc9211.FwdReasonUriMiss)
	if rc.Status() != -1 {
		status.ForwardStatus(rc.Status())
	}
	defer func() {
		rc.Headers().Add(headerName, status.String())
	}()

	cc := ParseCacheControl(rc.Headers().Values("Cache-Control"))
	maxAge, hasMaxAge := cc.MaxAge()
	if rc.Status() != http.StatusOK || cc.HasDirective("no-store") || !hasMaxAge || maxAge <= 0 {
		return nil
	}

	// Buffer the entity so the stored copy and the caller both get the
	// full body. The consumed stream is ours after the swap, so close it.
	var body []byte
	if stream := rc.EntityStream(); stream != nil {
		var err error
		body, err = io.ReadAll(stream)
		if err != nil {
			return err
		}
		stream.Close()
		rc.SetEntityStream(io.NopCloser(bytes.NewReader(body)))
	}

	bts, err := encodeContext(rc, body)
	if err != nil {
		return err
	}
	if err := cfg.Cache.Put(key, time.Now().Add(maxAge), bts); err != nil {
		return err
	}
	status.Stored()
	status.TTL(int(maxAge.Seconds()))
	return nil
}

// Load restores a stored response into a fresh context, marked as a cache
// hit. The boolean is false when the key is absent or expired.
func Load(cfg Config, key string) (*respctx.ResponseContext, bool, error) {
	bts, ok, err := cfg.Cache.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	rc, err := decodeContext(bts)
	if err != nil {
		return nil, false, err
	}
	status := rfc9211.CacheStatus{Name: cfg.name()}
	status.Hit()
	rc.Headers().Add(headerName, status.String())
	return rc, true, nil
}
