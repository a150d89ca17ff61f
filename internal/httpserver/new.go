package httpserver

import (
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"taskflow/config"
	"taskflow/internal/model"
	"taskflow/pkg/datemath"
	"taskflow/pkg/llmprovider"
	"taskflow/pkg/log"
	"taskflow/pkg/ratelimit"
	"taskflow/pkg/scope"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	// Storage
	databaseDriver string
	mongoDB        *mongo.Database
	firestore      *firestore.Client

	// Auth and admission control
	scopeManager scope.Manager
	loginLimiter *ratelimit.Limiter
	aiLimiter    *ratelimit.Limiter

	// Task and AI
	llm      *llmprovider.Manager
	dateMath *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Storage: DatabaseDriver picks which client the repositories use.
	DatabaseDriver string
	MongoDB        *mongo.Database
	Firestore      *firestore.Client

	// Auth and admission control
	ScopeManager scope.Manager
	LoginLimiter *ratelimit.Limiter
	AILimiter    *ratelimit.Limiter

	// Task and AI
	LLM      *llmprovider.Manager
	DateMath *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,
		databaseDriver:  cfg.DatabaseDriver,
		mongoDB:         cfg.MongoDB,
		firestore:       cfg.Firestore,
		scopeManager:    cfg.ScopeManager,
		loginLimiter:    cfg.LoginLimiter,
		aiLimiter:       cfg.AILimiter,
		llm:             cfg.LLM,
		dateMath:        cfg.DateMath,
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
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.environment == string(model.EnvironmentProduction) {
		// corsHandler falls back to "*" when no origin is configured.
		if len(srv.allowedOrigins) == 0 {
			return errors.New("cors origins are required in production")
		}
		for _, o := range srv.allowedOrigins {
			if o == "*" {
				return errors.New("wildcard cors origin is not allowed in production")
			}
		}
	}

	switch srv.databaseDriver {
	case config.DatabaseDriverMongo:
		if srv.mongoDB == nil {
			return errors.New("mongo database is required")
		}
	case config.DatabaseDriverFirestore:
		if srv.firestore == nil {
			return errors.New("firestore client is required")
		}
	default:
		return errors.New("unknown database driver: " + srv.databaseDriver)
	}
	return nil
}
