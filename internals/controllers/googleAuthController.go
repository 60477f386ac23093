package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Shubhamsh1838/Highway-delite/internals/config"
	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"github.com/Shubhamsh1838/Highway-delite/internals/store"
	"github.com/Shubhamsh1838/Highway-delite/internals/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var errNoGoogleEmail = errors.New("google profile has no email")

// upsertGoogleUser maps a Google profile onto a user record. An existing
// email keeps its password and gains the Google subject if missing;
// an unknown email becomes a new verified account with no password.
// Running it twice for the same profile resolves to the same user.
func upsertGoogleUser(users *store.UserStore, profile *utils.GoogleProfile) (*models.User, error) {
	if profile.Email == "" {
		return nil, errNoGoogleEmail
	}

	user, err := users.FindByEmail(profile.Email)
	if err == nil {
		if user.GoogleID == "" {
			user.GoogleID = profile.Subject
			if err := users.Save(user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	name := profile.Name
	if name == "" {
		name = strings.SplitN(profile.Email, "@", 2)[0]
	}

	user = &models.User{
		Name:       name,
		Email:      profile.Email,
		GoogleID:   profile.Subject,
		IsVerified: true,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *AuthController) loginWithGoogleProfile(profile *utils.GoogleProfile) (*models.User, error) {
	return upsertGoogleUser(a.Users, profile)
}

// GoogleAuthController drives the redirect-based OAuth flow for browser
// clients that cannot obtain an access token themselves.
type GoogleAuthController struct {
	Users        *store.UserStore
	TokenManager *utils.TokenManager
	Verifier     utils.GoogleVerifier
	Config       *oauth2.Config
}

func NewGoogleAuthController(cfg *config.Config, users *store.UserStore, tokenManager *utils.TokenManager, verifier utils.GoogleVerifier) *GoogleAuthController {
	return &GoogleAuthController{
		Users:        users,
		TokenManager: tokenManager,
		Verifier:     verifier,
		Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		},
	}
}

// Login redirects the user to Google's consent page.
func (g *GoogleAuthController) Login(c *gin.Context) {
	// In production, 'state' should be a random string saved in a cookie
	// to prevent CSRF.
	url := g.Config.AuthCodeURL("state-token")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback exchanges the code Google returned, then joins the same
// find-or-create path as the token-based endpoint.
func (g *GoogleAuthController) Callback(c *gin.Context) {
	code := c.Query("code")

	token, err := g.Config.Exchange(context.Background(), code)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid Google access token")
		return
	}

	profile, err := g.Verifier.FetchProfile(token.AccessToken)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidExternalToken) {
			respondError(c, http.StatusUnauthorized, "Invalid Google access token")
			return
		}
		log.Printf("Google callback error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during Google authentication")
		return
	}

	user, err := upsertGoogleUser(g.Users, profile)
	if err != nil {
		if errors.Is(err, errNoGoogleEmail) {
			respondError(c, http.StatusBadRequest, "Could not get email from Google")
			return
		}
		log.Printf("Google callback error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during Google authentication")
		return
	}

	sessionToken, err := g.TokenManager.Issue(user.ID)
	if err != nil {
		log.Printf("Google callback error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error during Google authentication")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Google authentication successful",
		"token":   sessionToken,
		"data":    userData(user),
	})
}
