package notioncontent

import (
	"context"
	"log/slog"

	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

// queryPageSize is the request page size used for every database query,
// pinned at the Notion API maximum regardless of any caller-level window.
const queryPageSize = 100

// CollectAllPages drives a database query to exhaustion and returns every
// page id in the service's own return order. Each item appears exactly once
// no matter how many pages the remote service splits the collection into.
func CollectAllPages(ctx context.Context, logger *slog.Logger, client Client, databaseID string) ([]string, error) {
	result, err := collectPages(ctx, logger, client, databaseID, nil)
	if err != nil {
		return nil, err
	}
	return result.PageIDs, nil
}

// CollectPageWindow drives a database query until `window.Limit` ids have
// been collected after skipping the first `window.Offset` visited items, or
// until the collection is exhausted, whichever comes first. No further pages
// are requested once the limit is satisfied. Visited counts every item seen
// across the fetched pages, which is the full collection size whenever the
// loop ran to exhaustion.
func CollectPageWindow(ctx context.Context, logger *slog.Logger, client Client, databaseID string, window ListWindow) (*ListResult, error) {
	if window.Limit <= 0 {
		return nil, accessError("list", databaseID, ErrInvalidInput, nil)
	}
	return collectPages(ctx, logger, client, databaseID, &window)
}

// collectPages is the single pagination engine behind both listing modes.
// The loop is inherently sequential: each request depends on the cursor the
// previous response returned. A nil window accumulates everything. On any
// failure the partial accumulation is discarded.
func collectPages(ctx context.Context, logger *slog.Logger, client Client, databaseID string, window *ListWindow) (*ListResult, error) {
	var (
		cursor  string
		visited int
		skipped int
		pageIDs []string
	)
	if window != nil {
		pageIDs = make([]string, 0, window.Limit)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req := notionapi.QueryDatabaseRequest{
			StartCursor: cursor,
			PageSize:    queryPageSize,
		}
		resp, err := client.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, TranslateRemoteError(logger, "list", databaseID, err)
		}

		visited += len(resp.Results)
		for _, page := range resp.Results {
			if window != nil && skipped < window.Offset {
				skipped++
				continue
			}
			if window == nil || len(pageIDs) < window.Limit {
				pageIDs = append(pageIDs, page.ID)
			}
		}

		if window != nil && len(pageIDs) >= window.Limit {
			break
		}
		if resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}

	return &ListResult{PageIDs: pageIDs, Visited: visited}, nil
}
