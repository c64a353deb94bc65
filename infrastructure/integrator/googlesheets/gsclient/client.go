package gsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/dazos/cfo-copilot-api/internal/config"
)

const (
	sheetsAPIBase = "https://sheets.googleapis.com/v4/spreadsheets"
	driveAPIBase  = "https://www.googleapis.com/drive/v3/files"
)

// spreadsheets = read/write; drive.file = create files owned by the app.
var scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
}

type Client interface {
	ReadRange(spreadsheetID, rangeA1 string) ([][]interface{}, error)
	UpdateRange(spreadsheetID, rangeA1 string, values [][]interface{}) error
	CreateSpreadsheet(title string) (string, string, error)
}

type SheetsClient struct {
	config *config.Config

	mu         sync.Mutex
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		config: cfg,
	}
}

// authClient builds an HTTP client authenticated as the service account.
// Credentials come from a JSON key file path or the key content itself.
func (c *SheetsClient) authClient() (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		return c.httpClient, nil
	}

	gsCfg := c.config.GoogleSheets

	var keyJSON []byte
	switch {
	case gsCfg.CredentialsFile != "":
		raw, err := os.ReadFile(gsCfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("error reading google credentials file: %w", err)
		}
		keyJSON = raw
	case gsCfg.CredentialsJSON != "":
		keyJSON = []byte(gsCfg.CredentialsJSON)
	default:
		return nil, fmt.Errorf("google sheets credentials not found: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_SHEETS_CREDENTIALS_JSON")
	}

	jwtConfig, err := google.JWTConfigFromJSON(keyJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("error parsing google service account key: %w", err)
	}

	base := &http.Client{Timeout: 60 * time.Second}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	c.httpClient = jwtConfig.Client(ctx)

	return c.httpClient, nil
}

type valueRange struct {
	Range  string          `json:"range,omitempty"`
	Values [][]interface{} `json:"values"`
}

func (c *SheetsClient) ReadRange(spreadsheetID, rangeA1 string) ([][]interface{}, error) {
	httpClient, err := c.authClient()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s", sheetsAPIBase, spreadsheetID, url.PathEscape(rangeA1))

	resp, err := httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error executing sheets read request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("sheets read", resp)
	}

	result := &valueRange{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("error decoding sheets response: %w", err)
	}

	if result.Values == nil {
		return [][]interface{}{}, nil
	}
	return result.Values, nil
}

func (c *SheetsClient) UpdateRange(spreadsheetID, rangeA1 string, values [][]interface{}) error {
	httpClient, err := c.authClient()
	if err != nil {
		return err
	}

	body, err := json.Marshal(&valueRange{Values: values})
	if err != nil {
		return fmt.Errorf("error encoding sheets values: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED", sheetsAPIBase, spreadsheetID, url.PathEscape(rangeA1))

	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating sheets update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error executing sheets update request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("sheets update", resp)
	}

	return nil
}

// CreateSpreadsheet creates a new sheet via the Drive API, owned by the
// service account. Returns the spreadsheet id and URL.
func (c *SheetsClient) CreateSpreadsheet(title string) (string, string, error) {
	httpClient, err := c.authClient()
	if err != nil {
		return "", "", err
	}

	body, err := json.Marshal(map[string]string{
		"name":     title,
		"mimeType": "application/vnd.google-apps.spreadsheet",
	})
	if err != nil {
		return "", "", fmt.Errorf("error encoding drive request: %w", err)
	}

	resp, err := httpClient.Post(driveAPIBase+"?fields=id,webViewLink", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("error executing drive create request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", apiError("drive create", resp)
	}

	result := struct {
		ID          string `json:"id"`
		WebViewLink string `json:"webViewLink"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", fmt.Errorf("error decoding drive response: %w", err)
	}

	sheetURL := result.WebViewLink
	if sheetURL == "" {
		sheetURL = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", result.ID)
	}

	return result.ID, sheetURL, nil
}

func apiError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return fmt.Errorf("%s failed with status %d: %s", operation, resp.StatusCode, string(raw))
}
