package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"lunchbox-ai/config"
	pkgLog "lunchbox-ai/pkg/log"
)

type Middleware struct {
	l        pkgLog.Logger
	config   *config.Config
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
	}
}
