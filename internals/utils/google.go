package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidExternalToken is returned when Google rejects the presented
// access token.
var ErrInvalidExternalToken = errors.New("invalid Google access token")

// GoogleProfile is the subset of the userinfo payload the auth flow needs.
type GoogleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"sub"`
}

// GoogleVerifier exchanges an external access token for the holder's
// Google profile.
type GoogleVerifier interface {
	FetchProfile(accessToken string) (*GoogleProfile, error)
}

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleUserinfoClient verifies access tokens against Google's userinfo
// endpoint over HTTPS.
type GoogleUserinfoClient struct {
	Endpoint string
	Client   *http.Client
}

func NewGoogleUserinfoClient() *GoogleUserinfoClient {
	return &GoogleUserinfoClient{
		Endpoint: googleUserinfoURL,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GoogleUserinfoClient) FetchProfile(accessToken string) (*GoogleProfile, error) {
	req, err := http.NewRequest(http.MethodGet, g.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidExternalToken
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, ErrInvalidExternalToken
	}

	return &profile, nil
}
