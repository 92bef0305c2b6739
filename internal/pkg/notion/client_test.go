package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titleProp(parts ...string) map[string]any {
	title := make([]map[string]any, 0, len(parts))
	for _, p := range parts {
		title = append(title, map[string]any{"plain_text": p})
	}
	return map[string]any{"title": title}
}

func TestQueryDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/databases/db-1/query", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"id": "page-1", "properties": map[string]any{"Name": titleProp("Development")}},
				{"id": "page-2", "properties": map[string]any{"Name": titleProp("Meet", "ing")}},
				{"id": "page-3", "properties": map[string]any{"Name": titleProp()}},
				{"id": "page-4", "properties": map[string]any{"Other": titleProp("Hidden")}},
			},
			"has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	pages, err := client.QueryDatabase(context.Background(), "db-1", "Name")
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, Page{ID: "page-1", Title: "Development"}, pages[0])
	assert.Equal(t, Page{ID: "page-2", Title: "Meeting"}, pages[1])
}

func TestQueryDatabasePaginates(t *testing.T) {
	var cursors []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			StartCursor string `json:"start_cursor"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cursors = append(cursors, req.StartCursor)

		if req.StartCursor == "" {
			next := "cursor-2"
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{"id": "page-1", "properties": map[string]any{"Name": titleProp("First")}},
				},
				"has_more":    true,
				"next_cursor": next,
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"id": "page-2", "properties": map[string]any{"Name": titleProp("Second")}},
			},
			"has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	pages, err := client.QueryDatabase(context.Background(), "db-1", "Name")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "cursor-2"}, cursors)
	require.Len(t, pages, 2)
	assert.Equal(t, "First", pages[0].Title)
	assert.Equal(t, "Second", pages[1].Title)
}

func TestQueryDatabaseErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"database not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	_, err := client.QueryDatabase(context.Background(), "db-missing", "Name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
