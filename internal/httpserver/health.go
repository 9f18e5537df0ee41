package httpserver

import (
	"github.com/gin-gonic/gin"

	"task-suggestion-service/pkg/response"
)

const (
	HealthMessage = "Task suggestion service"
	HealthVersion = "1.0.0"
	ServiceName   = "task-suggestion-service"
)

func probe(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck reports ready once the category reference set is loaded.
// @Summary Readiness Check
// @Description Check if the category model is loaded and suggestions can be served
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Model not loaded"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil && !srv.ready() {
		response.Unavailable(c, "model not loaded", probe("not_ready"))
		return
	}
	response.OK(c, probe("ready"))
}

// liveCheck answers as long as the process serves HTTP.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
