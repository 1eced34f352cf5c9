package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eventscore/internal/apperr"
	"eventscore/internal/metrics"
	"eventscore/internal/queue"
	"eventscore/internal/user"
)

type signupRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	YearLevelType string `json:"yearLevelType"`
	StrandID      string `json:"strandId"`
	CourseID      string `json:"courseId"`
	TesdaCourseID string `json:"tesdaCourseId"`
}

// Signup creates a student account and opens a session.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.users.Signup(c.Request.Context(), user.SignupInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		YearLevelType: req.YearLevelType,
		StrandID:      req.StrandID,
		CourseID:      req.CourseID,
		TesdaCourseID: req.TesdaCourseID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.sessions.SetCookie(c, res.User.ID, res.User.Role); err != nil {
		h.log.Errorw("issue session", "err", err)
		metrics.HandlerErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	// Welcome mail goes through the queue; delivery problems never fail the
	// signup response.
	if h.jobs != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.jobs.Publish(ctx, queue.NewMessage(queue.TypeWelcome, res.User.Email, res.FullName)); err != nil {
			h.log.Warnw("enqueue welcome mail", "err", err)
		}
	}

	metrics.Signups.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "User created successfully!",
		"username": res.User.Username,
		"fullName": res.FullName,
		"email":    res.User.Email,
		"role":     res.User.Role,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and opens a session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.sessions.SetCookie(c, u.ID, u.Role); err != nil {
		h.log.Errorw("issue session", "err", err)
		metrics.HandlerErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	metrics.Logins.Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "User logged in successfully!",
		"userId":   u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword rotates the account password and mails the replacement.
// This endpoint answers with a "message" field on every path.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), req.Email); err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": apperr.MessageOf(err)})
			return
		}
		h.log.Errorw("forgot password", "err", err)
		metrics.HandlerErrors.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	metrics.PasswordResets.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "New password sent to your email."})
}

// Logout clears the session cookie unconditionally.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
