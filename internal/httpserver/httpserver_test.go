package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/config"
	"taskflow/internal/model"
	"taskflow/pkg/datemath"
	"taskflow/pkg/llmprovider"
	"taskflow/pkg/log"
	"taskflow/pkg/scope"
)

func baseConfig(t *testing.T) Config {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		DatabaseDriver: config.DatabaseDriverMongo,
		ScopeManager:   scope.New("secret", time.Hour),
		LLM:            llmprovider.NewManager(nil, log.NewNop()),
		DateMath:       dates,
	}
}

func TestNew_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing port", func(c *Config) { c.Port = 0 }, "port is required"},
		{"missing scope", func(c *Config) { c.ScopeManager = nil }, "scope manager is required"},
		{"missing llm", func(c *Config) { c.LLM = nil }, "llm manager is required"},
		{"production without origins", func(c *Config) { c.Environment = string(model.EnvironmentProduction) }, "cors origins are required in production"},
		{"production wildcard origin", func(c *Config) {
			c.Environment = string(model.EnvironmentProduction)
			c.AllowedOrigins = []string{"https://app.example.com", "*"}
		}, "wildcard cors origin is not allowed"},
		{"production explicit origins reach storage check", func(c *Config) {
			c.Environment = string(model.EnvironmentProduction)
			c.AllowedOrigins = []string{"https://app.example.com"}
		}, "mongo database is required"},
		{"mongo without db", func(c *Config) {}, "mongo database is required"},
		{"firestore without client", func(c *Config) { c.DatabaseDriver = config.DatabaseDriverFirestore }, "firestore client is required"},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "sqlite" }, "unknown database driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(t)
			tt.mutate(&cfg)

			_, err := New(cfg.Logger, cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := HTTPServer{gin: gin.New(), l: log.NewNop()}
	srv.registerSystemRoutes()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
			continue
		}
		var body struct {
			Data map[string]string `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Data["service"] != ServiceName {
			t.Errorf("%s: service = %q", path, body.Data["service"])
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := HTTPServer{allowedOrigins: []string{"https://app.example.com"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := srv.corsHandler(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin %q for unknown origin", got)
	}
}
