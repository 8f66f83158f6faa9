package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/respctx/respctx"
	"github.com/respctx/respctx/cache"
	filtercache "github.com/respctx/respctx/pkg/filter-cache"
	filtergunzip "github.com/respctx/respctx/pkg/filter-gunzip"
	filterlog "github.com/respctx/respctx/pkg/filter-log"
)

var (
	// CLI flags
	configFilenameFlag string
	urlFlag            string
	methodFlag         string
	gunzipFlag         bool
	dbFilenameFlag     string
	verbosityTraceFlag bool
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&urlFlag, "url", "", "URL to inspect (overrides config)")
	flag.StringVar(&methodFlag, "method", http.MethodGet, "Request method")
	flag.BoolVar(&gunzipFlag, "gunzip", false, "Decompress gzip entities")
	flag.StringVar(&dbFilenameFlag, "db", "", "Cache responses in this sqlite db (use 'memory' for in-memory db)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
}

func main() {
	flag.Parse()

	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stdout})

	var config Config
	if configFilenameFlag != "" {
		var err error
		config, err = getConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot read config file")
		}
	}
	if urlFlag != "" {
		config.Targets = append(config.Targets, ConfigTarget{URL: urlFlag, Method: methodFlag})
	}
	if gunzipFlag {
		config.Gunzip = true
	}
	if dbFilenameFlag != "" {
		config.Cache = ConfigCache{Provider: "sqlite", File: dbFilenameFlag}
	}
	if len(config.Targets) == 0 {
		log.Fatal().Msg("Need at least one target URL")
	}

	var provider cache.Provider
	switch config.Cache.Provider {
	case "":
	case "memory":
		provider = cache.NewMemCache()
	case "sqlite":
		dbFilename := config.Cache.File
		if dbFilename == "memory" {
			dbFilename = ""
		}
		provider = cache.NewSQLiteCache(dbFilename)
	default:
		log.Fatal().Str("provider", config.Cache.Provider).Msg("Unknown cache provider")
	}

	// do not follow redirects, the Location header is part of what we inspect
	client := http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	for _, target := range config.Targets {
		inspect(&client, config, provider, target)
	}
}

func inspect(client *http.Client, config Config, provider cache.Provider, target ConfigTarget) {
	targetLog := log.With().Str("url", target.URL).Logger()
	cacheConfig := filtercache.Config{Cache: provider}

	if provider != nil {
		if rc, ok, err := filtercache.Load(cacheConfig, target.URL); err != nil {
			targetLog.Warn().Err(err).Msg("Cache lookup failed")
		} else if ok {
			targetLog.Info().Msg("Serving from cache")
			report(targetLog, rc)
			closeEntity(targetLog, rc)
			return
		}
	}

	method := target.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequest(method, target.URL, nil)
	if err != nil {
		targetLog.Error().Err(err).Msg("Could not create request")
		return
	}
	res, err := client.Do(req)
	if err != nil {
		targetLog.Error().Err(err).Msg("Request failed")
		return
	}

	rc := respctx.FromResponse(res)

	// run the filters in registered order, one at a time
	filters := make([]respctx.Filter, 0)
	if config.Gunzip {
		filters = append(filters, filtergunzip.Filter)
	}
	if len(config.Rules) > 0 {
		filters = append(filters, config.Rules.Filter)
	}
	if provider != nil {
		filters = append(filters, filtercache.New(cacheConfig, target.URL))
	}
	filters = append(filters, filterlog.New(&targetLog))
	for _, filter := range filters {
		if err := filter(rc); err != nil {
			targetLog.Error().Err(err).Msg("Filter failed")
			break
		}
	}

	report(targetLog, rc)
	closeEntity(targetLog, rc)
}

func report(targetLog zerolog.Logger, rc *respctx.ResponseContext) {
	event := targetLog.Info().
		Int("status", rc.Status()).
		Bool("entity", rc.HasEntity())
	if methods := rc.AllowedMethods(); len(methods) > 0 {
		event = event.Strs("allow", methods)
	}
	if tag, ok := rc.Language(); ok {
		event = event.Str("language", tag.String())
	}
	if modified := rc.LastModified(); !modified.IsZero() {
		event = event.Time("last-modified", modified)
	}
	for name := range rc.Cookies() {
		event = event.Str("cookie", name)
	}
	for _, link := range rc.Links() {
		event = event.Str("link", link.String())
	}
	if cacheStatus, ok := rc.HeaderString("Cache-Status"); ok {
		event = event.Str("cache-status", cacheStatus)
	}
	event.Msg("Inspected response")
}

// closeEntity closes whichever entity stream is current. The streams that
// filters swapped out were closed by those filters; this last one is the
// runtime's to close.
func closeEntity(targetLog zerolog.Logger, rc *respctx.ResponseContext) {
	if stream := rc.EntityStream(); stream != nil {
		if err := stream.Close(); err != nil {
			targetLog.Warn().Err(err).Msg("Could not close entity stream")
		}
	}
}
