package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/merakistudio/interior-api/internal/config"
	"github.com/merakistudio/interior-api/internal/httperr"
	"github.com/merakistudio/interior-api/internal/httpresp"
)

// ======================================================
// AUTH HANDLER
// ======================================================

const tokenTTL = 24 * time.Hour

// AuthHandler issues admin tokens against the single identity held in
// the environment. No credential ever lives in the database.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ---- POST /api/auth/login ----

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required")
		return
	}

	if h.cfg.AdminEmail == "" || h.cfg.AdminPasswordHash == "" {
		log.Error().Msg("admin credentials not configured")
		httperr.Internal(c, "auth_unconfigured", "Login is not available")
		return
	}

	if !strings.EqualFold(req.Email, h.cfg.AdminEmail) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.cfg.AdminPasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "admin",
		"role":  "admin",
		"email": h.cfg.AdminEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		log.Error().Err(err).Msg("signing token failed")
		httperr.Internal(c, "token_failed", "Error generating token")
		return
	}

	httpresp.OK(c, gin.H{
		"token":     signed,
		"expiresIn": int64(tokenTTL.Seconds()),
	})
}
