package qbclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dazos/cfo-copilot-api/internal/config"
)

const (
	tokenURL       = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"
	apiBaseProd    = "https://quickbooks.api.intuit.com/v3/company"
	apiBaseSandbox = "https://sandbox-quickbooks.api.intuit.com/v3/company"
)

type Client interface {
	GetReport(reportName, startDate, endDate string) (json.RawMessage, error)
}

type QuickBooksClient struct {
	httpClient *http.Client
	config     *config.Config

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewClient(cfg *config.Config) Client {
	return &QuickBooksClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}

func (c *QuickBooksClient) apiBase() string {
	if c.config.QuickBooks.Sandbox {
		return apiBaseSandbox
	}
	return apiBaseProd
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// refreshAccessToken exchanges the refresh token for a fresh access token.
// Intuit rotates refresh tokens, so the returned one replaces the stored one
// for the lifetime of this process.
func (c *QuickBooksClient) refreshAccessToken() (string, error) {
	qbCfg := c.config.QuickBooks

	refreshToken := c.refreshToken
	if refreshToken == "" {
		refreshToken = qbCfg.RefreshToken
	}

	auth := base64.StdEncoding.EncodeToString([]byte(qbCfg.ClientID + ":" + qbCfg.ClientSecret))

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("error creating token request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error executing token request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading token response: %w", err)
	}

	token := &tokenResponse{}
	if err := json.Unmarshal(raw, token); err != nil || token.AccessToken == "" {
		msg := token.ErrorDescription
		if msg == "" {
			msg = token.Error
		}
		if msg == "" {
			msg = string(raw)
		}
		return "", fmt.Errorf("quickbooks token refresh failed (%d): %s", resp.StatusCode, msg)
	}

	c.accessToken = token.AccessToken
	if token.RefreshToken != "" {
		c.refreshToken = token.RefreshToken
	}

	return c.accessToken, nil
}

func (c *QuickBooksClient) ensureToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" {
		return c.accessToken, nil
	}
	return c.refreshAccessToken()
}

// GetReport fetches a report (ProfitAndLoss, BalanceSheet or CashFlow) as raw
// JSON. Dates are YYYY-MM-DD and optional.
func (c *QuickBooksClient) GetReport(reportName, startDate, endDate string) (json.RawMessage, error) {
	qbCfg := c.config.QuickBooks
	if qbCfg.RealmID == "" {
		return nil, fmt.Errorf("QB_REALM_ID must be set")
	}

	token, err := c.ensureToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/reports/%s", c.apiBase(), qbCfg.RealmID, reportName)

	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating report request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing report request: %w", err)
	}
	defer resp.Body.Close()

	// token may have expired mid-process: refresh once and retry
	if resp.StatusCode == http.StatusUnauthorized {
		c.mu.Lock()
		c.accessToken = ""
		token, err = c.refreshAccessToken()
		c.mu.Unlock()
		if err != nil {
			return nil, err
		}

		retryCtx, retryCancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer retryCancel()

		retryReq, err := http.NewRequestWithContext(retryCtx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating report request: %w", err)
		}
		retryReq.Header.Set("Accept", "application/json")
		retryReq.Header.Set("Authorization", "Bearer "+token)

		retryResp, err := c.httpClient.Do(retryReq)
		if err != nil {
			return nil, fmt.Errorf("error executing report request: %w", err)
		}
		defer retryResp.Body.Close()
		resp = retryResp
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading report response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quickbooks report request failed with status %d", resp.StatusCode)
	}

	return json.RawMessage(raw), nil
}
