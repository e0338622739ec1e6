// Package memory provides an in-memory implementation of the notioncontent
// collaborator interfaces, used in tests and in the server's memory mode.
package memory

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

// Client is an in-memory Notion workspace. Pages and databases are seeded
// through AddPage and AddDatabase; queries honor the request's cursor and
// page size the same way the real service does, including the opaque
// continuation cursor.
type Client struct {
	mu         sync.RWMutex
	pages      map[string]*notionapi.Page
	bodies     map[string]string
	databases  map[string][]string
	queryCalls int
	queryErr   error
	failAfter  int
}

// New creates an empty in-memory workspace.
func New() *Client {
	return &Client{
		pages:     make(map[string]*notionapi.Page),
		bodies:    make(map[string]string),
		databases: make(map[string][]string),
	}
}

// AddPage seeds a page and its rendered markdown body.
func (c *Client) AddPage(page *notionapi.Page, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[page.ID] = page
	c.bodies[page.ID] = body
}

// AddDatabase seeds a database containing the given page ids, in order.
func (c *Client) AddDatabase(databaseID string, pageIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.databases[databaseID] = append([]string(nil), pageIDs...)
}

// FailQueriesAfter makes QueryDatabase return err once n calls have
// succeeded. Used to exercise mid-pagination failures.
func (c *Client) FailQueriesAfter(n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failAfter = n
	c.queryErr = err
}

// QueryCalls reports how many QueryDatabase requests have been served.
func (c *Client) QueryCalls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queryCalls
}

// FetchPage retrieves a seeded page, or a 404 API error.
func (c *Client) FetchPage(ctx context.Context, pageID string) (*notionapi.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[pageID]
	if !ok {
		return nil, &notionapi.APIError{
			StatusCode: http.StatusNotFound,
			Code:       "object_not_found",
			Message:    "Could not find page with ID: " + pageID,
		}
	}
	return page, nil
}

// QueryDatabase serves one page of a seeded database, cursoring through it
// in insertion order.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req notionapi.QueryDatabaseRequest) (*notionapi.QueryDatabaseResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.queryCalls++
	if c.queryErr != nil && c.queryCalls > c.failAfter {
		return nil, c.queryErr
	}

	ids, ok := c.databases[databaseID]
	if !ok {
		return nil, &notionapi.APIError{
			StatusCode: http.StatusNotFound,
			Code:       "object_not_found",
			Message:    "Could not find database with ID: " + databaseID,
		}
	}

	start := 0
	if req.StartCursor != "" {
		parsed, err := strconv.Atoi(req.StartCursor)
		if err != nil || parsed < 0 || parsed > len(ids) {
			return nil, &notionapi.APIError{
				StatusCode: http.StatusBadRequest,
				Code:       "validation_error",
				Message:    "invalid start_cursor",
			}
		}
		start = parsed
	}

	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	end := start + pageSize
	if end > len(ids) {
		end = len(ids)
	}

	results := make([]notionapi.Page, 0, end-start)
	for _, id := range ids[start:end] {
		if page, ok := c.pages[id]; ok {
			results = append(results, *page)
		} else {
			results = append(results, notionapi.Page{ID: id})
		}
	}

	resp := &notionapi.QueryDatabaseResponse{Results: results}
	if end < len(ids) {
		cursor := strconv.Itoa(end)
		resp.HasMore = true
		resp.NextCursor = &cursor
	}
	return resp, nil
}

// RenderPage returns the seeded markdown body for a page.
func (c *Client) RenderPage(ctx context.Context, pageID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	body, ok := c.bodies[pageID]
	if !ok {
		return "", &notionapi.APIError{
			StatusCode: http.StatusNotFound,
			Code:       "object_not_found",
			Message:    "Could not find page with ID: " + pageID,
		}
	}
	return body, nil
}
