package filtercache

import (
	"io"
	"strings"
	"testing"

	"github.com/respctx/respctx"
	"github.com/respctx/respctx/cache"
)

func freshContext(cacheControl, body string) *respctx.ResponseContext {
	rc := respctx.New()
	rc.SetStatus(200)
	if cacheControl != "" {
		rc.Headers().Set("Cache-Control", cacheControl)
	}
	rc.SetEntityStream(io.NopCloser(strings.NewReader(body)))
	return rc
}

func TestStoresFreshResponse(t *testing.T) {
	cfg := Config{Cache: cache.NewMemCache()}
	rc := freshContext("max-age=60", "Hello world")

	if err := New(cfg, "key")(rc); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !cfg.Cache.Has("key") {
		t.Fatal("Response not stored")
	}
	status := rc.Headers().Get("Cache-Status")
	if !strings.Contains(status, "stored") || !strings.Contains(status, "ttl=60") {
		t.Fatalf("Cache-Status: %s", status)
	}
	// the buffered entity must still be readable by the caller
	body, err := io.ReadAll(rc.EntityStream())
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if string(body) != "Hello world" {
		t.Fatalf("Body: %s", body)
	}
}

func TestSkipsNoStore(t *testing.T) {
	cfg := Config{Cache: cache.NewMemCache()}
	rc := freshContext("no-store, max-age=60", "secret")

	if err := New(cfg, "key")(rc); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if cfg.Cache.Has("key") {
		t.Fatal("no-store response stored")
	}
	if !strings.Contains(rc.Headers().Get("Cache-Status"), "fwd=uri-miss") {
		t.Fatalf("Cache-Status: %s", rc.Headers().Get("Cache-Status"))
	}
}

func TestSkipsWithoutMaxAge(t *testing.T) {
	cfg := Config{Cache: cache.NewMemCache()}
	rc := freshContext("", "Hello world")

	New(cfg, "key")(rc)
	if cfg.Cache.Has("key") {
		t.Fatal("Response without max-age stored")
	}
}

func TestSkipsNonOK(t *testing.T) {
	cfg := Config{Cache: cache.NewMemCache()}
	rc := freshContext("max-age=60", "gone")
	rc.SetStatus(404)

	New(cfg, "key")(rc)
	if cfg.Cache.Has("key") {
		t.Fatal("Non-200 response stored")
	}
}

func TestLoadRestoresResponse(t *testing.T) {
	cfg := Config{Cache: cache.NewMemCache(), Name: "testcache"}
	rc := freshContext("max-age=60", "Hello world")
	rc.Headers().Set("Content-Type", "text/plain")
	if err := New(cfg, "key")(rc); err != nil {
		t.Fatalf("Error: %v", err)
	}

	loaded, ok, err := Load(cfg, "key")
	if err != nil || !ok {
		t.Fatalf("ok: %v, err: %v", ok, err)
	}
	if loaded.Status() != 200 {
		t.Fatalf("Status: %d", loaded.Status())
	}
	if mediaType := loaded.MediaType(); mediaType == nil || mediaType.Type != "text" {
		t.Fatalf("Media type: %+v", mediaType)
	}
	if !strings.Contains(loaded.Headers().Get("Cache-Status"), "testcache; hit") {
		t.Fatalf("Cache-Status: %s", loaded.Headers().Get("Cache-Status"))
	}
	body, err := io.ReadAll(loaded.EntityStream())
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if string(body) != "Hello world" {
		t.Fatalf("Body: %s", body)
	}
	// the stored copy must not carry the Cache-Status of the store pass
	if strings.Count(loaded.Headers().Get("Cache-Status"), ";") != 1 {
		t.Fatalf("Cache-Status: %s", loaded.Headers().Get("Cache-Status"))
	}
}

func TestLoadMiss(t *testing.T) {
	cfg := Config{Cache: cache.NewMemCache()}
	if _, ok, err := Load(cfg, "missing"); ok || err != nil {
		t.Fatalf("ok: %v, err: %v", ok, err)
	}
}
