package cmd

import (
	_ "expvar"
	"net/http"
	_ "net/http/pprof"

	"github.com/byxorna/storefront/pkg/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// serveDebug exposes pprof, expvar and the prometheus registry on addr.
func serveDebug(addr string) {
	logger := logging.NewLogger("debug")
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error().Err(err).Str("addr", addr).Msg("debug listener stopped")
		}
	}()
}
