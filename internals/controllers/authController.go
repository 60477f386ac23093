package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"github.com/Shubhamsh1838/Highway-delite/internals/store"
	"github.com/Shubhamsh1838/Highway-delite/internals/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Users        *store.UserStore
	OTP          *utils.OTPManager
	TokenManager *utils.TokenManager
	Google       utils.GoogleVerifier
}

func NewAuthController(users *store.UserStore, otp *utils.OTPManager, tokenManager *utils.TokenManager, google utils.GoogleVerifier) *AuthController {
	return &AuthController{
		Users:        users,
		OTP:          otp,
		TokenManager: tokenManager,
		Google:       google,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

// Register creates an unverified account and mails it a verification code.
// The account cannot log in until the code is confirmed.
func (a *AuthController) Register(c *gin.Context) {
	var body RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	if len(body.Password) < 6 {
		respondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	user := &models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hash),
	}

	if err := a.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(c, http.StatusBadRequest, "User already exists with this email")
			return
		}
		log.Printf("Registration error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	if err := a.OTP.Issue(user); err != nil {
		log.Printf("Registration error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "OTP sent to your email. Please verify to complete registration.",
		"data": gin.H{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// VerifyOTP confirms the pending code and, on success, logs the user in.
func (a *AuthController) VerifyOTP(c *gin.Context) {
	var body VerifyOTPRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide email and OTP")
		return
	}

	user, err := a.OTP.Verify(body.Email, body.OTP)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidOrExpiredOTP) {
			respondError(c, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		log.Printf("OTP verification error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during OTP verification")
		return
	}

	token, err := a.TokenManager.Issue(user.ID)
	if err != nil {
		log.Printf("OTP verification error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during OTP verification")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified successfully",
		"token":   token,
		"data":    userData(user),
	})
}

// ResendOTP reissues a fresh code for an existing account. The previous
// code stops working.
func (a *AuthController) ResendOTP(c *gin.Context) {
	var body ResendOTPRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide email")
		return
	}

	user, err := a.Users.FindByEmail(body.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Resend OTP error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while resending OTP")
		return
	}

	if err := a.OTP.Issue(user); err != nil {
		log.Printf("Resend OTP error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while resending OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP resent to your email",
	})
}

// Login authenticates with email and password. Unknown email and wrong
// password collapse to the same message; an unverified account gets a
// fresh OTP instead of a token.
func (a *AuthController) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := a.Users.FindByEmail(body.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("Login error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	if user.GoogleID != "" && user.Password == "" {
		respondError(c, http.StatusUnauthorized, "This account uses Google authentication. Please sign in with Google.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.IsVerified {
		if err := a.OTP.Issue(user); err != nil {
			log.Printf("Login error: %v", err)
			respondError(c, http.StatusInternalServerError, "Server error during login")
			return
		}
		respondError(c, http.StatusUnauthorized, "Email not verified. OTP has been resent to your email.")
		return
	}

	token, err := a.TokenManager.Issue(user.ID)
	if err != nil {
		log.Printf("Login error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"data":    userData(user),
	})
}

// GoogleAuth logs in with a Google access token obtained by the client.
// New emails become verified accounts with no password; existing accounts
// get the Google subject linked on first use. OTP never applies here.
func (a *AuthController) GoogleAuth(c *gin.Context) {
	var body GoogleAuthRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Google access token is required")
		return
	}

	profile, err := a.Google.FetchProfile(body.AccessToken)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidExternalToken) {
			respondError(c, http.StatusUnauthorized, "Invalid Google access token")
			return
		}
		log.Printf("Google auth error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during Google authentication")
		return
	}

	user, err := a.loginWithGoogleProfile(profile)
	if err != nil {
		if errors.Is(err, errNoGoogleEmail) {
			respondError(c, http.StatusBadRequest, "Could not get email from Google")
			return
		}
		log.Printf("Google auth error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during Google authentication")
		return
	}

	token, err := a.TokenManager.Issue(user.ID)
	if err != nil {
		log.Printf("Google auth error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during Google authentication")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Google authentication successful",
		"token":   token,
		"data":    userData(user),
	})
}

// Me returns the profile of the user the middleware resolved from the
// bearer token.
func (a *AuthController) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userData(user),
	})
}
