package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/domain"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

func toUser(u domain.UserSummary) authclient.User {
	return authclient.User{
		ID:              u.ID,
		Email:           u.Email,
		Phone:           u.Phone,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            string(u.Role),
		IsActive:        u.IsActive,
		EmailVerifiedAt: u.EmailVerifiedAt,
		PhoneVerifiedAt: u.PhoneVerifiedAt,
		CreatedAt:       u.CreatedAt,
	}
}

func toTokenPair(p domain.TokenPair) authclient.TokenPair {
	return authclient.TokenPair{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    int64(p.ExpiresIn.Seconds()),
	}
}

func toSessionResponse(res domain.LoginResult) authclient.SessionResponse {
	return authclient.SessionResponse{
		TokenPair:     toTokenPair(res.Tokens),
		User:          toUser(res.User),
		RememberToken: res.RememberToken,
	}
}

// deviceInfoFromRequest collects the device metadata persisted on sessions.
// The device id is whatever the client reports; it is informational only.
func deviceInfoFromRequest(r *http.Request) domain.DeviceInfo {
	return domain.DeviceInfo{
		DeviceID:  r.Header.Get("X-Device-ID"),
		UserAgent: r.UserAgent(),
		IP:        httpx.IPKeyExtractor(r),
	}
}
