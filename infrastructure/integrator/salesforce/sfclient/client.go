package sfclient

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dazos/cfo-copilot-api/internal/config"
)

const (
	apiVersion   = "59.0"
	loginTimeout = 30 * time.Second
)

// Record is a flattened Salesforce record: nested references (e.g. Account,
// RecordType) are folded into "<Field>_Id" / "<Field>_Name" keys.
type Record map[string]interface{}

type Client interface {
	Query(soql string) ([]Record, error)
}

type SalesforceClient struct {
	httpClient *http.Client
	config     *config.Config

	mu          sync.Mutex
	sessionID   string
	instanceURL string
}

func NewClient(cfg *config.Config) Client {
	return &SalesforceClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}

type loginEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		LoginResponse struct {
			Result struct {
				ServerURL string `xml:"serverUrl"`
				SessionID string `xml:"sessionId"`
			} `xml:"result"`
		} `xml:"loginResponse"`
		Fault struct {
			FaultString string `xml:"faultstring"`
		} `xml:"Fault"`
	} `xml:"Body"`
}

// login authenticates through the SOAP endpoint with username, password and
// security token, yielding a session id usable as a REST bearer token
func (c *SalesforceClient) login() error {
	sfCfg := c.config.Salesforce

	body := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:urn="urn:partner.soap.sforce.com">
  <soapenv:Body>
    <urn:login>
      <urn:username>%s</urn:username>
      <urn:password>%s</urn:password>
    </urn:login>
  </soapenv:Body>
</soapenv:Envelope>`,
		xmlEscape(sfCfg.Username),
		xmlEscape(sfCfg.Password+sfCfg.SecurityToken),
	)

	ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("https://%s.salesforce.com/services/Soap/u/%s", sfCfg.Domain, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "login")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error executing login request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading login response: %w", err)
	}

	envelope := &loginEnvelope{}
	if err := xml.Unmarshal(raw, envelope); err != nil {
		return fmt.Errorf("error decoding login response: %w", err)
	}

	if envelope.Body.Fault.FaultString != "" {
		return fmt.Errorf("salesforce login failed: %s", envelope.Body.Fault.FaultString)
	}

	result := envelope.Body.LoginResponse.Result
	if result.SessionID == "" || result.ServerURL == "" {
		return fmt.Errorf("salesforce login failed with status: %s", resp.Status)
	}

	// serverUrl points at the SOAP endpoint on the instance host
	instance := result.ServerURL
	if idx := strings.Index(instance, "/services/"); idx > 0 {
		instance = instance[:idx]
	}

	c.sessionID = result.SessionID
	c.instanceURL = instance

	return nil
}

func (c *SalesforceClient) session() (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		if err := c.login(); err != nil {
			return "", "", err
		}
	}

	return c.sessionID, c.instanceURL, nil
}

func (c *SalesforceClient) invalidateSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = ""
}

func xmlEscape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
