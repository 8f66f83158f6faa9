// Package filtergunzip provides a response filter that transparently
// decompresses a gzip entity by swapping the entity stream.
package filtergunzip

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/respctx/respctx"
)

// Filter replaces the entity stream with a decompressing reader when the
// response carries Content-Encoding: gzip. The Content-Encoding and
// Content-Length headers are removed since they no longer describe the
// stream the caller will read.
func Filter(rc *respctx.ResponseContext) error {
	isGzip := rc.ContainsHeader("Content-Encoding", func(value string) bool {
		return strings.EqualFold(value, "gzip")
	})
	if !isGzip {
		return nil
	}
	body := rc.EntityStream()
	if body == nil {
		return nil
	}
	reader, err := gzip.NewReader(body)
	if err != nil {
		return err
	}
	rc.SetEntityStream(&gunzipStream{reader: reader, body: body})
	rc.Headers().Del("Content-Encoding")
	rc.Headers().Del("Content-Length")
	return nil
}

// gunzipStream closes the compressed stream it replaced along with the
// gzip reader, since the runtime only closes the current stream.
type gunzipStream struct {
	reader *gzip.Reader
	body   io.ReadCloser
}

func (g *gunzipStream) Read(b []byte) (int, error) {
	return g.reader.Read(b)
}

func (g *gunzipStream) Close() error {
	err := g.reader.Close()
	if bodyErr := g.body.Close(); err == nil {
		err = bodyErr
	}
	return err
}
