package sfclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type queryResponse struct {
	TotalSize      int                      `json:"totalSize"`
	Done           bool                     `json:"done"`
	NextRecordsURL string                   `json:"nextRecordsUrl"`
	Records        []map[string]interface{} `json:"records"`
}

// Query runs a SOQL query and returns all pages of flattened records
func (c *SalesforceClient) Query(soql string) ([]Record, error) {
	sessionID, instanceURL, err := c.session()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/services/data/v%s/query?q=%s", instanceURL, apiVersion, url.QueryEscape(soql))

	records := make([]Record, 0)
	retried := false

	for endpoint != "" {
		page, status, err := c.fetchPage(endpoint, sessionID)
		if err != nil {
			return nil, err
		}

		// expired session: log in again and replay the request once
		if status == http.StatusUnauthorized && !retried {
			retried = true
			c.invalidateSession()
			if sessionID, instanceURL, err = c.session(); err != nil {
				return nil, err
			}
			continue
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("salesforce query failed with status %d", status)
		}

		for _, rec := range page.Records {
			records = append(records, flattenRecord(rec))
		}

		if page.Done || page.NextRecordsURL == "" {
			break
		}
		endpoint = instanceURL + page.NextRecordsURL
	}

	return records, nil
}

func (c *SalesforceClient) fetchPage(endpoint, sessionID string) (*queryResponse, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating query request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	page := &queryResponse{}
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("error decoding query response: %w", err)
	}

	return page, resp.StatusCode, nil
}

// flattenRecord drops the "attributes" metadata and folds nested references
// into "<Field>_Id" / "<Field>_Name" keys, e.g. Account -> Account_Id,
// Account_Name.
func flattenRecord(rec map[string]interface{}) Record {
	row := Record{}
	for key, value := range rec {
		if key == "attributes" {
			continue
		}
		if nested, ok := value.(map[string]interface{}); ok {
			if _, isRef := nested["attributes"]; isRef {
				row[key+"_Id"] = nested["Id"]
				if name, ok := nested["Name"]; ok {
					row[key+"_Name"] = name
				}
				continue
			}
		}
		row[key] = value
	}
	return row
}
