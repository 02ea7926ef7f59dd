package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/application/user/usecases"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

const accessTokenCookie = "access_token"

type AuthHandler struct {
	registerUC      usecases.RegisterExecutor
	loginUC         usecases.LoginExecutor
	logoutUC        usecases.LogoutExecutor
	cookieMaxAgeSec int
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	accessExpMinutes int,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		logoutUC:        logoutUC,
		cookieMaxAgeSec: accessExpMinutes * 60,
		logger:          logger.NewLogger(),
	}
}

// Signup handles POST /auth/signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusCreated, "Account created successfully", "/auth/login/", result)
}

// Login handles POST /auth/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetCookie(accessTokenCookie, result.AccessToken, h.cookieMaxAgeSec, "/", "", false, true)

	utils.RedirectResponse(c, http.StatusOK, "Logged in successfully", "/", LoginResponse{
		UserID:      result.UserID,
		Username:    result.Username,
		AccessToken: result.AccessToken,
	})
}

// Logout handles POST /auth/logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := c.Get("user_id")
	cmd := usecases.LogoutCommand{}
	if id, ok := userID.(uint); ok {
		cmd.ActorID = id
	}

	result, err := h.logoutUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)

	utils.RedirectResponse(c, http.StatusOK, "Logged out successfully", result.RedirectTo, nil)
}
