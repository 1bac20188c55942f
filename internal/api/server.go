package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notarydesk/priorities/internal/api/middleware"
	"github.com/notarydesk/priorities/internal/metrics"
	"github.com/notarydesk/priorities/pkg/config"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
}

func NewServer(
	cfg config.Config,
	employees *EmployeeAPI,
	priorities *PriorityAPI,
	assignments *AssignmentAPI,
	common *CommonAPI,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Server {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	logger = logger.Named("api")

	s := &Server{}
	s.router = gin.New()
	s.router.ContextWithFallback = true
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger(logger))
	s.router.Use(middleware.Cors())
	s.router.Use(middleware.Metrics(m))
	s.router.Use(middleware.ErrorHandlingMiddleware(logger))

	NewEmployeeAPIWrap(employees).BindAll(s.router)
	NewPriorityAPIWrap(priorities).BindAll(s.router)
	NewAssignmentAPIWrap(assignments).BindAll(s.router)
	NewCommonAPIWrap(common).BindAll(s.router)

	s.router.GET("/health", func(c *gin.Context) {
		resp, err := common.HealthCheck(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	s.router.GET("/metrics", gin.WrapH(m.Handler()))

	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
