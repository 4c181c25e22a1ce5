package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"lunchbox-ai/config"
	"lunchbox-ai/pkg/datemath"
	"lunchbox-ai/pkg/discord"
	"lunchbox-ai/pkg/gcalendar"
	"lunchbox-ai/pkg/llmprovider"
	pkgLog "lunchbox-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Task domain dependencies
	db       *sql.DB
	llm      *llmprovider.Manager
	dateMath *datemath.Parser
	calendar *gcalendar.Client // optional
	notifier discord.IDiscord  // optional
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	DB       *sql.DB
	LLM      *llmprovider.Manager
	DateMath *datemath.Parser
	Calendar *gcalendar.Client
	Notifier discord.IDiscord
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		db:          cfg.DB,
		llm:         cfg.LLM,
		dateMath:    cfg.DateMath,
		calendar:    cfg.Calendar,
		notifier:    cfg.Notifier,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("LLM manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
