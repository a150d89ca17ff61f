package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/iterator"

	"taskflow/config"
	"taskflow/pkg/response"
)

const (
	HealthMessage = "taskflow API"
	HealthVersion = "1.0.0"
	ServiceName   = "taskflow"
)

const readyPingTimeout = 2 * time.Second

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"storage": srv.databaseDriver,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once the configured store answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyPingTimeout)
	defer cancel()

	if err := srv.pingStorage(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %s ping: %v", srv.databaseDriver, err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "database unreachable",
		})
		return
	}

	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}

// pingStorage is a no-op when no client is wired.
func (srv HTTPServer) pingStorage(ctx context.Context) error {
	switch {
	case srv.databaseDriver == config.DatabaseDriverFirestore && srv.firestore != nil:
		// Firestore has no ping. Listing collections needs an authenticated call.
		_, err := srv.firestore.Collections(ctx).Next()
		if err == iterator.Done {
			return nil
		}
		return err
	case srv.mongoDB != nil:
		return srv.mongoDB.Client().Ping(ctx, nil)
	}
	return nil
}
