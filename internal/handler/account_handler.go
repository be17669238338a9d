package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PS-gitpro/myblog/internal/auth"
	"github.com/PS-gitpro/myblog/internal/logger"
	"github.com/PS-gitpro/myblog/internal/middleware"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// AccountHandler handles registration, login, logout, and the profile
// workflows.
type AccountHandler struct {
	accountService service.AccountServiceInterface
	sessions       *auth.Sessions
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountServiceInterface, sessions *auth.Sessions) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		sessions:       sessions,
	}
}

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// RegisterForm handles GET /register/ - the registration form context.
func (h *AccountHandler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "email", "password", "password_confirm"},
	})
}

// Register handles POST /register/ - creates the user plus an empty
// profile. The new user is not logged in; they are sent to the login
// page with a success message.
func (h *AccountHandler) Register(c *gin.Context) {
	var form validator.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), &form)
	if err != nil {
		respondError(c, err, "account")
		return
	}

	c.Header("Location", middleware.LoginPath)
	c.JSON(http.StatusSeeOther, gin.H{
		"message":  "Account created for " + user.Username + ", please log in",
		"redirect": middleware.LoginPath,
	})
}

// LoginForm handles GET /login/ - the login form context.
func (h *AccountHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "password"},
	})
}

// Login handles POST /login/ - verifies credentials and issues a
// session cookie.
func (h *AccountHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	user, err := h.accountService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		respondError(c, err, "login")
		return
	}

	if err := h.sessions.Issue(c.Request.Context(), c.Writer, user.ID); err != nil {
		respondError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout handles POST /logout/ - destroys the session and expires the
// cookie.
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c.Request.Context(), c.Writer, c.Request); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("session destroy failed",
			"error", err.Error(),
		)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Profile handles GET /profile/ - the logged-in user's profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	user := middleware.GetUser(c)

	profile, err := h.accountService.Profile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"profile": profile,
	})
}

// UpdateProfile handles POST /profile/ - updates bio, location, birth
// date, and avatar. A blank avatar keeps the current one.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	user := middleware.GetUser(c)

	var form validator.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	profile, err := h.accountService.UpdateProfile(c.Request.Context(), user.ID, &form)
	if err != nil {
		respondError(c, err, "profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
