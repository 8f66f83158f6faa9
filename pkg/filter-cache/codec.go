package filtercache

import (
	"bufio"
	"bytes"
	"io"
	"net/http"

	"github.com/respctx/respctx"
)

// encodeContext serializes the context with an already buffered body into
// HTTP/1.1 wire form.
func encodeContext(rc *respctx.ResponseContext, body []byte) ([]byte, error) {
	res := &http.Response{
		StatusCode:    rc.Status(),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        rc.Headers().Clone(),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
	buf := &bytes.Buffer{}
	if err := res.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeContext turns stored wire-form bytes back into a context.
func decodeContext(b []byte) (*respctx.ResponseContext, error) {
	res, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(b)), nil)
	if err != nil {
		return nil, err
	}
	return respctx.FromResponse(res), nil
}
