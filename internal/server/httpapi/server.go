// Package httpapi exposes the journal over HTTP/JSON. Sessions are carried
// in an HttpOnly cookie holding a signed JWT.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"moodflow/internal/logging"
	"moodflow/internal/server/config"
	"moodflow/internal/server/services"
)

// sessionCookie is the name of the cookie carrying the session token.
const sessionCookie = "moodflow_session"

type Server struct {
	config   *config.Config
	log      logging.Logger
	users    *services.UserService
	journal  *services.JournalService
	router   *gin.Engine
}

func NewServer(cfg *config.Config, log logging.Logger, users *services.UserService, journal *services.JournalService) *Server {
	s := &Server{
		config:  cfg,
		log:     log,
		users:   users,
		journal: journal,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID())

	router.GET("/health", s.health)

	api := router.Group("/api")
	{
		api.POST("/register", s.register)
		api.POST("/login", s.login)
		api.POST("/logout", s.logout)
		api.POST("/payment-webhook", s.paymentWebhook)

		authed := api.Group("")
		authed.Use(s.authRequired())
		{
			authed.GET("/user", s.currentUser)
			authed.GET("/entries", s.listEntries)
			authed.POST("/entry", s.createEntry)
			authed.POST("/create-payment-link", s.createPaymentLink)
			authed.POST("/generate-insight", s.generateInsight)
		}
	}

	s.router = router
	return s
}

// Router exposes the handler tree, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.config.EndpointAddr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info(ctx, "http server listening", "addr", s.config.EndpointAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().Format(time.RFC3339)})
}
