package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	pageSize = 100
	// maxPages caps how many pages one sync will pull.
	maxPages = 1000
)

// Page is one row of a Notion database, reduced to what tag sync needs.
type Page struct {
	ID    string
	Title string
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub
// server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size"`
}

type queryResponse struct {
	Results []struct {
		ID         string                     `json:"id"`
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type titleProperty struct {
	Title []struct {
		PlainText string `json:"plain_text"`
	} `json:"title"`
}

// QueryDatabase walks the database page by page and returns every row
// whose title property is non-empty. Rows without the title property
// or with a blank title are skipped.
func (c *Client) QueryDatabase(ctx context.Context, databaseID, titleProp string) ([]Page, error) {
	var pages []Page
	cursor := ""

	for fetched := 0; fetched < maxPages; {
		resp, err := c.query(ctx, databaseID, cursor)
		if err != nil {
			return nil, err
		}

		for _, result := range resp.Results {
			fetched++
			raw, ok := result.Properties[titleProp]
			if !ok {
				continue
			}

			var prop titleProperty
			if err := json.Unmarshal(raw, &prop); err != nil {
				continue
			}

			title := ""
			for _, part := range prop.Title {
				title += part.PlainText
			}
			if title == "" {
				continue
			}

			pages = append(pages, Page{ID: result.ID, Title: title})
		}

		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	return pages, nil
}

func (c *Client) query(ctx context.Context, databaseID, cursor string) (*queryResponse, error) {
	body, err := json.Marshal(queryRequest{StartCursor: cursor, PageSize: pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notion query: %w", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create notion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("notion returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode notion response: %w", err)
	}
	return &out, nil
}
