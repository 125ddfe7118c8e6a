package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/config"
	"github.com/smartque/smartque-api/internal/db"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/mail"
	"github.com/smartque/smartque-api/internal/middleware"
	"github.com/smartque/smartque-api/internal/models"
	"github.com/smartque/smartque-api/internal/otp"
	"github.com/smartque/smartque-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	otp    *otp.Store
	mailer mail.Mailer
	log    *logrus.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	otpStore *otp.Store,
	mailer mail.Mailer,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		otp:    otpStore,
		mailer: mailer,
		log:    log,
	}
}

// --------- Requests ---------

type GenerateOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- OTP flow ---------

func (h *AuthHandler) GenerateOTP(c *gin.Context) {
	var req GenerateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email is required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validators.ValidateEmail(email); err != nil {
		httperr.From(c, err, "Email validation failed")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Server error during OTP generation")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Email already registered. Please login instead.")
		return
	}

	code, err := h.otp.Generate(c.Request.Context(), email)
	if err != nil {
		h.log.WithError(err).Error("otp generation failed")
		httperr.Internal(c, "Server error during OTP generation")
		return
	}

	// Delivery is best-effort: the code is valid whether or not the email
	// goes out.
	subject, body := mail.OTPEmail(code)
	if err := h.mailer.Send(email, subject, body); err != nil {
		h.log.WithError(err).WithField("email", email).Warn("otp email failed")
	}

	payload := gin.H{
		"message":   "Verification code sent to your email",
		"expiresIn": 600,
	}
	if h.mailer.Mode() == mail.ModeConsole {
		// Development convenience: no transport configured, surface the code.
		payload["message"] = "OTP generated. Check server logs for the code."
		payload["otp"] = code
		payload["mode"] = mail.ModeConsole
	}

	httpresp.OK(c, payload)
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email and OTP are required")
		return
	}

	if len(req.OTP) != 6 || strings.Trim(req.OTP, "0123456789") != "" {
		httperr.BadRequest(c, "Invalid OTP format. Must be 6 digits.")
		return
	}

	remaining, err := h.otp.Verify(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		if httperr.IsValidation(err) {
			c.JSON(400, gin.H{
				"success":           false,
				"error":             err.Error(),
				"attemptsRemaining": remaining,
			})
			return
		}
		httperr.Internal(c, "Server error during OTP verification")
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Email verified successfully!",
		"verified": true,
	})
}

// --------- Registration / login ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "All fields are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	verified, err := h.otp.IsVerified(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "Server error")
		return
	}
	if !verified {
		httperr.BadRequest(c, "Email verification required. Please verify your email first.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Server error")
		return
	}
	if count > 0 {
		_ = h.otp.Clear(c.Request.Context(), email)
		httperr.BadRequest(c, "User already exists. Please login instead.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	user := models.User{
		Email:           email,
		PasswordHash:    string(hashed),
		Name:            req.Name,
		Role:            "user",
		IsEmailVerified: true,
	}
	if err := h.db.Create(&user).Error; err != nil {
		// Two concurrent registrations can both pass the count check.
		if db.IsUniqueViolation(err) {
			httperr.BadRequest(c, "User already exists. Please login instead.")
			return
		}
		httperr.Internal(c, "Server error")
		return
	}

	_ = h.otp.Clear(c.Request.Context(), email)

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	h.log.WithField("email", email).Info("registration successful")

	httpresp.Created(c, gin.H{
		"message": "Registration successful!",
		"token":   token,
		"user":    userJSON(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "Invalid email or password")
			return
		}
		httperr.Internal(c, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Login successful!",
		"token":   token,
		"user":    userJSON(&user),
	})
}

// --------- Password reset ---------

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email is required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// The response never discloses whether the account exists.
	respond := func() {
		httpresp.OK(c, gin.H{
			"message": "If an account exists, password reset instructions have been sent to your email.",
		})
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		respond()
		return
	}

	token, err := h.otp.NewResetToken(c.Request.Context(), user.ID)
	if err != nil {
		h.log.WithError(err).Error("reset token mint failed")
		respond()
		return
	}

	resetURL := "http://localhost:3000/reset-password?token=" + token
	subject, body := mail.ResetEmail(user.Name, resetURL)
	if err := h.mailer.Send(email, subject, body); err != nil {
		h.log.WithError(err).WithField("email", email).Warn("reset email failed")
	}

	respond()
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Token and new password are required")
		return
	}

	userID, err := h.otp.ConsumeResetToken(c.Request.Context(), req.Token)
	if err != nil {
		httperr.From(c, err, "Server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	httpresp.OK(c, gin.H{"message": "Password updated successfully"})
}

// --------- Profile ---------

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	httpresp.OK(c, gin.H{"user": userJSON(&user)})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(h.config.JWTExpire).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":              u.ID,
		"email":           u.Email,
		"name":            u.Name,
		"role":            u.Role,
		"isEmailVerified": u.IsEmailVerified,
	}
}
