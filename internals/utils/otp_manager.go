package utils

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strconv"
	"time"

	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"github.com/Shubhamsh1838/Highway-delite/internals/store"
)

// ErrInvalidOrExpiredOTP is the single failure every bad verification
// collapses to. Wrong code, expired code, and unknown email are
// indistinguishable to the caller so the API cannot be used to probe
// which addresses are registered.
var ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")

// OTPDispatcher delivers a generated code to its recipient. Delivery is
// best-effort; a failing dispatcher never fails the surrounding operation.
type OTPDispatcher interface {
	SendOTP(toEmail string, code string) error
}

// OTPManager generates verification codes, anchors their expiry, and checks
// submitted codes against the pending state on the user record.
type OTPManager struct {
	Users      *store.UserStore
	Dispatcher OTPDispatcher
	Validity   time.Duration
}

func NewOTPManager(users *store.UserStore, dispatcher OTPDispatcher, validity time.Duration) *OTPManager {
	return &OTPManager{
		Users:      users,
		Dispatcher: dispatcher,
		Validity:   validity,
	}
}

// GenerateCode draws a 6-digit code uniformly from [100000, 999999] using
// crypto/rand.
func (om *OTPManager) GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// Issue attaches a fresh code and expiry window to the user, persists the
// record, and hands the code to the dispatcher in the background. The
// previous pending code, if any, stops being valid.
func (om *OTPManager) Issue(user *models.User) error {
	code, err := om.GenerateCode()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(om.Validity)
	user.OTPCode = code
	user.OTPExpiresAt = &expiresAt

	if err := om.Users.Save(user); err != nil {
		return err
	}

	// Send the email in a background goroutine so the response isn't slow.
	// Delivery failure is logged, never propagated.
	email := user.Email
	go func() {
		if err := om.Dispatcher.SendOTP(email, code); err != nil {
			log.Printf("OTP delivery to %s failed: %v", email, err)
		}
	}()

	return nil
}

// Verify checks a submitted code for the given email. On success the
// pending code is cleared and the user marked verified in a single save.
func (om *OTPManager) Verify(email string, code string) (*models.User, error) {
	user, err := om.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidOrExpiredOTP
		}
		return nil, err
	}

	if user.OTPCode == "" || user.OTPExpiresAt == nil {
		return nil, ErrInvalidOrExpiredOTP
	}
	if user.OTPCode != code {
		return nil, ErrInvalidOrExpiredOTP
	}
	if !user.OTPExpiresAt.After(time.Now()) {
		return nil, ErrInvalidOrExpiredOTP
	}

	user.IsVerified = true
	user.OTPCode = ""
	user.OTPExpiresAt = nil

	if err := om.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
