// Package auth provides token managers for the Fabric API client.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fabworks-io/fabric-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrTokenRequestFailed       = errors.New("token request failed")
	ErrEmptyAccessToken         = errors.New("token response carries no access token")
)

// TokenManager provides bearer tokens for API requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager provides a fixed token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

// RefreshToken implements TokenManager.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken implements TokenManager.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// ClientCredentialsConfig configures an AAD client-credentials grant.
type ClientCredentialsConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
}

// ClientCredentialsTokenManager obtains tokens via the OAuth2
// client-credentials grant and caches them until shortly before expiry.
type ClientCredentialsTokenManager struct {
	config     *ClientCredentialsConfig
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewClientCredentialsTokenManager creates a client-credentials token
// manager.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig) *ClientCredentialsTokenManager {
	return &ClientCredentialsTokenManager{
		config: config,
		httpClient: &http.Client{
			Timeout: constants.TokenHTTPTimeout,
		},
	}
}

// GetToken implements TokenManager. A cached token is returned while it is
// valid for at least the expiry leeway.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && time.Now().Add(constants.TokenExpiryLeeway).Before(m.expiresAt) {
		return m.token, nil
	}

	err := m.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	return m.token, nil
}

// RefreshToken implements TokenManager by discarding the cached token and
// fetching a fresh one.
func (m *ClientCredentialsTokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fetchToken(ctx)
}

// SetToken implements TokenManager.
func (m *ClientCredentialsTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.expiresAt = expiresAt
}

// fetchToken performs the grant. Callers hold m.mu.
func (m *ClientCredentialsTokenManager) fetchToken(ctx context.Context) error {
	form := url.Values{
		"grant_type":    []string{"client_credentials"},
		"client_id":     []string{m.config.ClientID},
		"client_secret": []string{m.config.ClientSecret},
		"scope":         []string{m.config.Scope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrTokenRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return ErrEmptyAccessToken
	}

	m.token = tokenResp.AccessToken
	m.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return nil
}
