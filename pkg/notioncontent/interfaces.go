package notioncontent

import (
	"context"

	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

// Client is the remote transport collaborator: it fetches single pages and
// one page of database query results at a time.
type Client interface {
	// FetchPage retrieves one page by id.
	FetchPage(ctx context.Context, pageID string) (*notionapi.Page, error)

	// QueryDatabase retrieves one page of results from a database query.
	QueryDatabase(ctx context.Context, databaseID string, req notionapi.QueryDatabaseRequest) (*notionapi.QueryDatabaseResponse, error)
}

// Renderer produces the textual body of a page.
type Renderer interface {
	// RenderPage renders the page's block content as markdown.
	RenderPage(ctx context.Context, pageID string) (string, error)
}

// Accessor is the read-only storage interface over a Notion workspace.
type Accessor interface {
	// Info declares which operations this accessor supports.
	Info() Capability

	// Stat returns metadata for the object at path.
	Stat(ctx context.Context, path string) (*ObjectInfo, error)

	// Read returns the content of the object at path. Only full-range reads
	// are supported.
	Read(ctx context.Context, path string, rng ByteRange) ([]byte, error)

	// List enumerates the entries under path. Only the root is listable.
	List(ctx context.Context, path string) (*EntryIterator, error)
}
