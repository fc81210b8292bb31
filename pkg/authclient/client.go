package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is the typed form of the service's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Path       string
	Method     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth api: %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Client is a thin REST client for the auth service. It carries no session
// state; Session layers token handling on top.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an auth service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, "", &u, http.StatusCreated); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and returns the opened session's tokens.
func (c *Client) Login(ctx context.Context, req LoginRequest, deviceID string) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.doJSONWithDevice(ctx, http.MethodPost, "/api/auth/login", req, "", deviceID, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh rotates a refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken, deviceID string) (*TokenPair, error) {
	var pair TokenPair
	req := RefreshRequest{RefreshToken: refreshToken}
	if err := c.doJSONWithDevice(ctx, http.MethodPost, "/api/auth/refresh", req, "", deviceID, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Remember restores a session from a remember-me token.
func (c *Client) Remember(ctx context.Context, rememberToken, deviceID string) (*SessionResponse, error) {
	var resp SessionResponse
	req := RememberRequest{RememberToken: rememberToken}
	if err := c.doJSONWithDevice(ctx, http.MethodPost, "/api/auth/remember", req, "", deviceID, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the session behind the access token.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	var msg MessageResponse
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, accessToken, &msg, http.StatusOK)
}

// Profile fetches the authenticated user's account.
func (c *Client) Profile(ctx context.Context, accessToken string) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/profile", nil, accessToken, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, accessToken string, req ChangePasswordRequest) error {
	var msg MessageResponse
	return c.doJSON(ctx, http.MethodPost, "/api/auth/change-password", req, accessToken, &msg, http.StatusOK)
}

// RequestVerification asks for a verification code on a channel.
func (c *Client) RequestVerification(ctx context.Context, accessToken, channel string) error {
	var msg MessageResponse
	req := VerificationRequest{Channel: channel}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/verify/request", req, accessToken, &msg, http.StatusOK)
}

// ConfirmVerification submits a verification code.
func (c *Client) ConfirmVerification(ctx context.Context, accessToken, channel, code string) error {
	var msg MessageResponse
	req := VerificationConfirmRequest{Channel: channel, Code: code}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/verify/confirm", req, accessToken, &msg, http.StatusOK)
}

// RequestDeletion opens an account deletion request.
func (c *Client) RequestDeletion(ctx context.Context, accessToken, reason string) (*DeletionResponse, error) {
	var resp DeletionResponse
	req := DeletionRequest{Reason: reason}
	if err := c.doJSON(ctx, http.MethodPost, "/api/account/deletion", req, accessToken, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfirmDeletion completes a pending deletion. No access token needed; the
// confirmation token is the credential.
func (c *Client) ConfirmDeletion(ctx context.Context, token string) error {
	var msg MessageResponse
	req := DeletionConfirmRequest{Token: token}
	return c.doJSON(ctx, http.MethodPost, "/api/account/deletion/confirm", req, "", &msg, http.StatusOK)
}

// CancelDeletion withdraws the pending deletion request.
func (c *Client) CancelDeletion(ctx context.Context, accessToken string) error {
	var msg MessageResponse
	return c.doJSON(ctx, http.MethodPost, "/api/account/deletion/cancel", nil, accessToken, &msg, http.StatusOK)
}

// Health fetches the detailed health report.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, "", &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, accessToken string, target any, expectedStatus int) error {
	return c.doJSONWithDevice(ctx, method, path, body, accessToken, "", target, expectedStatus)
}

func (c *Client) doJSONWithDevice(ctx context.Context, method, path string, body any, accessToken, deviceID string, target any, expectedStatus int) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	} else if method == http.MethodPost {
		// Empty-body POSTs still need a JSON object for strict decoders.
		reader = strings.NewReader("{}")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseErrorResponse turns an error envelope into an *APIError. Bodies that
// aren't the envelope (proxies, panics) still yield a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.StatusCode != 0 {
		return &APIError{
			StatusCode: envelope.StatusCode,
			Message:    envelope.Message,
			Path:       envelope.Path,
			Method:     envelope.Method,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
		Path:       resp.Request.URL.Path,
		Method:     resp.Request.Method,
	}
}
