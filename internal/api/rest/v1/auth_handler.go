package v1

import (
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling login and profile requests
type AuthHandler interface {
	Login(ctx *gin.Context)
	Profile(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login exchanges e-mail and password for an access token
// @Summary Log in
// @Description Exchange e-mail and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if _, err := decodeRequest(ctx, &request); err != nil {
		respondError(ctx, err)
		return
	}
	if request.Email == "" || request.Password == "" {
		respondError(ctx, common.Invalid("email and password are required"))
		return
	}

	token, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Profile returns the user the access token was issued for
// @Summary Current user
// @Description Return the account the bearer token was issued for.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/auth/profile [get]
func (handler *authHandler) Profile(ctx *gin.Context) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	user, err := handler.authService.Profile(ctx, claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ProfileResponse{User: newUserResponse(user)})
}
