package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shubhamsh1838/Highway-delite/internals/config"
	"github.com/Shubhamsh1838/Highway-delite/internals/controllers"
	"github.com/Shubhamsh1838/Highway-delite/internals/middleware"
	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"github.com/Shubhamsh1838/Highway-delite/internals/store"
	"github.com/Shubhamsh1838/Highway-delite/internals/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGoogle resolves preset access tokens to profiles; everything else is
// an invalid external token.
type fakeGoogle struct {
	profiles map[string]*utils.GoogleProfile
}

func (f *fakeGoogle) FetchProfile(accessToken string) (*utils.GoogleProfile, error) {
	if p, ok := f.profiles[accessToken]; ok {
		return p, nil
	}
	return nil, utils.ErrInvalidExternalToken
}

// nullDispatcher swallows OTP mail; tests read pending codes from the DB.
type nullDispatcher struct{}

func (nullDispatcher) SendOTP(string, string) error { return nil }

// failingDispatcher simulates an unreachable mail server. Delivery is
// best-effort, so nothing that issues an OTP should notice.
type failingDispatcher struct{}

func (failingDispatcher) SendOTP(string, string) error {
	return errors.New("smtp: connection refused")
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Users  *store.UserStore
	Notes  *store.NoteStore
	Google *fakeGoogle
}

// newTestEnv wires the same graph as routes.SetupRouter onto a fresh
// in-memory database, with SMTP and Google swapped for fakes.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithDispatcher(t, nullDispatcher{})
}

func newTestEnvWithDispatcher(t *testing.T, dispatcher utils.OTPDispatcher) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))

	cfg := &config.Config{
		AppName:     "Notes App",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		OTPValidity: 10 * time.Minute,
	}

	userStore := store.NewUserStore(db)
	noteStore := store.NewNoteStore(db)
	tokenManager := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	otpManager := utils.NewOTPManager(userStore, dispatcher, cfg.OTPValidity)
	google := &fakeGoogle{profiles: map[string]*utils.GoogleProfile{}}

	authMiddleware := middleware.NewRequireAuthMiddleware(userStore, tokenManager)
	authCtrl := controllers.NewAuthController(userStore, otpManager, tokenManager, google)
	notesCtrl := controllers.NewNotesController(noteStore)

	r := gin.New()

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/verify-otp", authCtrl.VerifyOTP)
		auth.POST("/resend-otp", authCtrl.ResendOTP)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/google", authCtrl.GoogleAuth)
		auth.GET("/me", authMiddleware.RequireAuth, authCtrl.Me)
	}

	notes := r.Group("/api/notes")
	notes.Use(authMiddleware.RequireAuth)
	{
		notes.GET("", notesCtrl.List)
		notes.POST("", notesCtrl.Create)
		notes.PUT("/:id", notesCtrl.Update)
		notes.DELETE("/:id", notesCtrl.Delete)
	}

	return &testEnv{Router: r, DB: db, Users: userStore, Notes: noteStore, Google: google}
}

// request performs an in-process HTTP call and decodes the envelope.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// storedOTP reads the pending verification code straight from the database.
func (e *testEnv) storedOTP(t *testing.T, email string) string {
	t.Helper()

	user, err := e.Users.FindByEmail(email)
	require.NoError(t, err)
	return user.OTPCode
}

// registerAndVerify walks a user through the full signup flow and returns
// a usable session token.
func (e *testEnv) registerAndVerify(t *testing.T, name, email, password string) string {
	t.Helper()

	w, _ := e.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := e.request(t, http.MethodPost, "/api/auth/verify-otp", "", gin.H{
		"email": email, "otp": e.storedOTP(t, email),
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

// seedVerifiedUser inserts a verified account directly, bypassing the HTTP
// flow, for tests that only need an existing login.
func (e *testEnv) seedVerifiedUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, Password: string(hash), IsVerified: true}
	require.NoError(t, e.Users.Create(user))
	return user
}
