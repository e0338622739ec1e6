package notioncontent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// StorageAccessor answers stat, read, and list calls against a Notion
// workspace. Every call owns its own state; nothing is cached or shared
// between calls, so one accessor may serve many concurrent requests.
type StorageAccessor struct {
	client      Client
	renderer    Renderer
	databaseID  string
	frontmatter bool
	logger      *slog.Logger
}

var _ Accessor = (*StorageAccessor)(nil)

// Option applies configuration to a StorageAccessor.
type Option func(*StorageAccessor) error

// WithClient sets the remote transport client. Required.
func WithClient(client Client) Option {
	return func(a *StorageAccessor) error {
		if client == nil {
			return fmt.Errorf("client cannot be nil")
		}
		a.client = client
		return nil
	}
}

// WithRenderer sets the page body renderer. Required.
func WithRenderer(renderer Renderer) Option {
	return func(a *StorageAccessor) error {
		if renderer == nil {
			return fmt.Errorf("renderer cannot be nil")
		}
		a.renderer = renderer
		return nil
	}
}

// WithDatabaseID sets the default database listed at the root. Without it,
// List is unavailable.
func WithDatabaseID(databaseID string) Option {
	return func(a *StorageAccessor) error {
		a.databaseID = CanonicalPageID(databaseID)
		return nil
	}
}

// WithFrontmatter enables prepending normalized page properties as a
// frontmatter header on rendered content.
func WithFrontmatter(enabled bool) Option {
	return func(a *StorageAccessor) error {
		a.frontmatter = enabled
		return nil
	}
}

// WithLogger sets the logger used at the error-translation boundary.
func WithLogger(logger *slog.Logger) Option {
	return func(a *StorageAccessor) error {
		a.logger = logger
		return nil
	}
}

// New creates a StorageAccessor with the given options. A client and a
// renderer are required.
func New(opts ...Option) (*StorageAccessor, error) {
	a := &StorageAccessor{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if a.renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a, nil
}

// Info declares the accessor's capabilities. List is available only when a
// default database id is configured.
func (a *StorageAccessor) Info() Capability {
	return Capability{
		Stat: true,
		Read: true,
		List: a.databaseID != "",
	}
}

// Stat returns metadata for the object at path. The root path names the
// directory container; any other path resolves to a page whose content is
// rendered to determine its size.
func (a *StorageAccessor) Stat(ctx context.Context, path string) (*ObjectInfo, error) {
	if IsRootPath(path) {
		return &ObjectInfo{Path: path, IsDir: true}, nil
	}

	content, lastModified, err := a.pageContent(ctx, "stat", path)
	if err != nil {
		return nil, err
	}

	return &ObjectInfo{
		Path:         path,
		Size:         int64(len(content)),
		ContentType:  MarkdownContentType,
		LastModified: lastModified,
	}, nil
}

// Read returns the full content of the page at path. Sub-ranges are not
// supported; content only exists as a whole once rendered.
func (a *StorageAccessor) Read(ctx context.Context, path string, rng ByteRange) ([]byte, error) {
	if !rng.IsFull() {
		return nil, accessError("read", path, ErrUnsupported,
			fmt.Errorf("range reads are not supported"))
	}

	content, _, err := a.pageContent(ctx, "read", path)
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

// Download returns the content of the page at path as a reader.
func (a *StorageAccessor) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := a.Read(ctx, path, FullRange)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// List enumerates the pages of the configured database under the root path
// and returns a forward-only iterator, one entry per page.
func (a *StorageAccessor) List(ctx context.Context, path string) (*EntryIterator, error) {
	if a.databaseID == "" {
		return nil, accessError("list", path, ErrUnsupported,
			fmt.Errorf("list requires a configured database id"))
	}
	if !IsRootDirPath(path) {
		return nil, accessError("list", path, ErrNotADirectory,
			fmt.Errorf("only the root directory is listable"))
	}

	pageIDs, err := CollectAllPages(ctx, a.logger, a.client, a.databaseID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(pageIDs))
	for _, id := range pageIDs {
		entries = append(entries, Entry{
			Path:        id + MarkdownSuffix,
			ContentType: MarkdownContentType,
		})
	}
	return NewEntryIterator(entries), nil
}

// pageContent runs the shared fetch, render, normalize, frontmatter pipeline
// and returns the final content along with the page's last-modified time.
func (a *StorageAccessor) pageContent(ctx context.Context, op, path string) (string, time.Time, error) {
	pageID, err := ResolvePagePath(path)
	if err != nil {
		return "", time.Time{}, err
	}

	page, err := a.client.FetchPage(ctx, pageID)
	if err != nil {
		return "", time.Time{}, TranslateRemoteError(a.logger, op, path, err)
	}

	body, err := a.renderer.RenderPage(ctx, pageID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", time.Time{}, err
		}
		a.logger.Error("failed to render notion page", "op", op, "page_id", pageID, "error", err)
		return "", time.Time{}, accessError(op, path, ErrUnexpected, err)
	}

	content := body
	if a.frontmatter {
		content = ApplyFrontmatter(NormalizeProperties(page.Properties), body)
	}
	return content, page.LastEditedTime, nil
}
