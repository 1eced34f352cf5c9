package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventscore/internal/apperr"
	"eventscore/internal/auth"
	"eventscore/internal/criteria"
	"eventscore/internal/metrics"
	"eventscore/internal/queue"
	"eventscore/internal/user"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	users    *user.Service
	criteria *criteria.Service
	sessions auth.Sessions
	jobs     queue.Queue
	log      *zap.SugaredLogger
}

// New builds a handler set.
func New(users *user.Service, crit *criteria.Service, sessions auth.Sessions, jobs queue.Queue, log *zap.SugaredLogger) *Handler {
	return &Handler{users: users, criteria: crit, sessions: sessions, jobs: jobs, log: log}
}

// Register mounts all routes. Criteria management requires a staff or admin
// session.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/logout", h.Logout)

	crit := r.Group("/api/event/criteria", auth.RequireSession(h.sessions, user.RoleStaff, user.RoleAdmin))
	crit.GET("/:eventId", h.ListCriteria)
	crit.POST("/:eventId", h.CreateCriteria)
	crit.PUT("/update/:criteriaId", h.UpdateCriteria)
	crit.DELETE("/delete/:criteriaId", h.DeleteCriteria)
}

// respondError maps a classified error onto exactly one JSON response with
// an "error" field. Unclassified errors become a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		h.log.Errorw("request failed", "path", c.FullPath(), "err", err)
		metrics.HandlerErrors.Inc()
	}
	c.JSON(apperr.Status(kind), gin.H{"error": apperr.MessageOf(err)})
}
