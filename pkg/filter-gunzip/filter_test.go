package filtergunzip

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/respctx/respctx"
)

func gzipBytes(t *testing.T, body string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)
	if _, err := zw.Write([]byte(body)); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Error: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressesGzipEntity(t *testing.T) {
	rc := respctx.New()
	rc.SetStatus(200)
	rc.Headers().Set("Content-Encoding", "gzip")
	compressed := gzipBytes(t, "Hello world")
	rc.Headers().Set("Content-Length", "11")
	rc.SetEntityStream(io.NopCloser(bytes.NewReader(compressed)))

	if err := Filter(rc); err != nil {
		t.Fatalf("Error: %v", err)
	}
	body, err := io.ReadAll(rc.EntityStream())
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if string(body) != "Hello world" {
		t.Fatalf("Body: %s", body)
	}
	if _, ok := rc.HeaderString("Content-Encoding"); ok {
		t.Fatal("Content-Encoding still present")
	}
	if rc.Length() != -1 {
		t.Fatalf("Length is %d", rc.Length())
	}
}

func TestLeavesUncompressedEntityAlone(t *testing.T) {
	rc := respctx.New()
	rc.SetStatus(200)
	stream := io.NopCloser(bytes.NewReader([]byte("plain")))
	rc.SetEntityStream(stream)

	if err := Filter(rc); err != nil {
		t.Fatalf("Error: %v", err)
	}
	body, _ := io.ReadAll(rc.EntityStream())
	if string(body) != "plain" {
		t.Fatalf("Body: %s", body)
	}
}

func TestGarbageGzipEntity(t *testing.T) {
	rc := respctx.New()
	rc.Headers().Set("Content-Encoding", "gzip")
	rc.SetEntityStream(io.NopCloser(bytes.NewReader([]byte("not gzip"))))

	if err := Filter(rc); err == nil {
		t.Fatal("Garbage gzip stream not reported")
	}
}
