package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Verification channels. Each confirms a different contact identifier on
// the account.
const (
	ChannelEmail = "email"
	ChannelPhone = "phone"
)

var (
	ErrInvalidCode    = errors.New("invalid_verification_code")
	ErrInvalidChannel = errors.New("invalid_verification_channel")
	ErrNoIdentifier   = errors.New("no_identifier_for_channel")
)

// VerificationService issues and checks the short numeric codes used to
// confirm email addresses and phone numbers. Codes are TOTP values derived
// from the per-user verification secret, so nothing per-code is persisted
// and an issued code stays valid for the configured period.
type VerificationService struct {
	Store store.Store

	// CodePeriod is how long an issued code stays valid.
	CodePeriod time.Duration
}

// DefaultCodePeriod keeps verification codes usable for ten minutes.
const DefaultCodePeriod = 10 * time.Minute

func (s *VerificationService) period() uint {
	if s.CodePeriod <= 0 {
		return uint(DefaultCodePeriod.Seconds())
	}
	return uint(s.CodePeriod.Seconds())
}

func (s *VerificationService) opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    s.period(),
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// RequestCode generates the current verification code for the channel. The
// code is returned to the caller for delivery (mail or SMS gateway); the
// service itself never stores it.
func (s *VerificationService) RequestCode(ctx context.Context, userID, channel string) (string, error) {
	l := slogx.FromContext(ctx)

	if channel != ChannelEmail && channel != ChannelPhone {
		return "", ErrInvalidChannel
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if channel == ChannelEmail && u.Email == "" {
		return "", ErrNoIdentifier
	}
	if channel == ChannelPhone && u.Phone == "" {
		return "", ErrNoIdentifier
	}

	code, err := totp.GenerateCodeCustom(u.VerificationSecret, time.Now().UTC(), s.opts())
	if err != nil {
		return "", err
	}

	l.Info("verification code issued",
		slog.String("user_id", userID),
		slog.String("channel", channel),
	)
	return code, nil
}

// ConfirmCode validates a code and stamps the channel's verified timestamp.
func (s *VerificationService) ConfirmCode(ctx context.Context, userID, channel, code string) error {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if channel != ChannelEmail && channel != ChannelPhone {
		return ErrInvalidChannel
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	ok, err := totp.ValidateCustom(code, u.VerificationSecret, now, s.opts())
	if err != nil || !ok {
		l.Info("verification code rejected",
			slog.String("user_id", userID),
			slog.String("channel", channel),
		)
		return ErrInvalidCode
	}

	switch channel {
	case ChannelEmail:
		err = s.Store.Users().MarkEmailVerified(ctx, userID, now)
	case ChannelPhone:
		err = s.Store.Users().MarkPhoneVerified(ctx, userID, now)
	}
	if err != nil {
		return err
	}

	l.Info("identifier verified",
		slog.String("user_id", userID),
		slog.String("channel", channel),
	)
	return nil
}
