package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uniguide/uniguide/internal/auth"
	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
	"github.com/uniguide/uniguide/internal/auth/session"
	"github.com/uniguide/uniguide/internal/carousel"
	carouseldomain "github.com/uniguide/uniguide/internal/carousel/domain"
	"github.com/uniguide/uniguide/internal/config"
	"github.com/uniguide/uniguide/internal/feedback"
	feedbackdomain "github.com/uniguide/uniguide/internal/feedback/domain"
	"github.com/uniguide/uniguide/internal/guide"
	guidedomain "github.com/uniguide/uniguide/internal/guide/domain"
	"github.com/uniguide/uniguide/internal/observability"
	obslogger "github.com/uniguide/uniguide/internal/observability/logger"
	obsmetrics "github.com/uniguide/uniguide/internal/observability/metrics"
	"github.com/uniguide/uniguide/internal/providers"
	"github.com/uniguide/uniguide/internal/ratelimit"
	"github.com/uniguide/uniguide/internal/report"
	reportservice "github.com/uniguide/uniguide/internal/report/service"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	session.Module,
	auth.Module,
	guide.Module,
	carousel.Module,
	feedback.Module,
	providers.Module,
	ratelimit.Module,
	reportservice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	authsvc      authdomain.Service
	sessions     *session.Manager
	genID        *snowflake.Node
	guideSvc     guidedomain.GuideService
	carouselSvc  carouseldomain.Service
	feedbackSvc  feedbackdomain.Service
	reportSvc    report.Service
	loginLimiter *ratelimit.TokenBucket
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	Authsvc      authdomain.Service
	Sessions     *session.Manager
	GenID        *snowflake.Node
	GuideSvc     guidedomain.GuideService
	CarouselSvc  carouseldomain.Service
	FeedbackSvc  feedbackdomain.Service
	ReportSvc    report.Service
	LoginLimiter *ratelimit.TokenBucket `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		log:          p.Log.Named("http.server"),
		authsvc:      p.Authsvc,
		sessions:     p.Sessions,
		genID:        p.GenID,
		guideSvc:     p.GuideSvc,
		carouselSvc:  p.CarouselSvc,
		feedbackSvc:  p.FeedbackSvc,
		reportSvc:    p.ReportSvc,
		loginLimiter: p.LoginLimiter,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/verify", s.VerifyEmail)
	auth.POST("/login", s.LoginRateLimit(), s.Login)
	auth.POST("/logout", s.Logout)
	auth.POST("/forgot", s.Forgot)
	auth.POST("/reset", s.ResetPassword)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Services --------
	api.GET("/services", s.ListServices)
	api.GET("/services/:id", s.GetServiceByID)

	// -------- Carousel --------
	api.GET("/carousel", s.ListCarouselImages)

	// -------- Feedback --------
	api.POST("/feedback", s.AuthRequired(), s.SubmitFeedback)
	api.GET("/feedback", s.ListFeedback)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")

	admin.Use(s.AuthRequired())
	admin.Use(s.RequireArea())

	// -------- Services --------
	admin.POST("/services", s.CreateService)
	admin.PATCH("/services/:id", s.UpdateService)
	admin.DELETE("/services/:id", s.DeleteService)

	// -------- Carousel --------
	admin.POST("/carousel", s.CreateCarouselImage)
	admin.PATCH("/carousel/:id", s.UpdateCarouselImage)
	admin.DELETE("/carousel/:id", s.DeleteCarouselImage)

	// -------- Users --------
	admin.GET("/users", s.ListUsers)
	admin.PATCH("/users/:id/role", s.UpdateUserRole)
	admin.DELETE("/users/:id", s.DeleteUser)

	// -------- Feedback analytics --------
	admin.GET("/feedback", s.AdminListFeedback)
	admin.DELETE("/feedback/:id", s.DeleteFeedback)
	admin.GET("/feedback/stats", s.FeedbackStats)
	admin.GET("/feedback/report", s.FeedbackReport)
}
