// Package filterlog provides a response filter that logs one structured
// summary line per response.
package filterlog

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/respctx/respctx"
)

// New returns a logging filter. Each response gets a fresh correlation id
// so lines from later filters can be tied together. The global zerolog
// logger is used if logger is nil.
func New(logger *zerolog.Logger) respctx.Filter {
	if logger == nil {
		logger = &log.Logger
	}
	return func(rc *respctx.ResponseContext) error {
		responseLog := logger.With().
			Str("response", uuid.NewString()).
			Logger()
		event := responseLog.Info().
			Int("status", rc.Status()).
			Int64("length", rc.Length())
		if info := rc.StatusInfo(); info != nil {
			event = event.Str("family", info.Family().String())
		}
		if mediaType := rc.MediaType(); mediaType != nil {
			event = event.Str("type", mediaType.String())
		}
		if tag := rc.EntityTag(); tag != nil {
			event = event.Str("etag", tag.String())
		}
		if date := rc.Date(); !date.IsZero() {
			event = event.Time("date", date)
		}
		if location := rc.Location(); location != nil {
			event = event.Str("location", location.String())
		}
		event.Msg("Response received")
		return nil
	}
}
