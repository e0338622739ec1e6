// Package api exposes the notion-content gateway over HTTP: single pages
// with content negotiation, and windowed database listings. Credentials
// arrive per request; the server-configured token is only a fallback.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/notion-content/pkg/notioncontent"
	"github.com/tendant/notion-content/pkg/notioncontent/markdown"
	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

const (
	defaultListLimit = 20

	markdownContentType = "text/markdown; charset=utf-8"
)

// Session bundles the per-token collaborators a request works with.
type Session struct {
	Client   notioncontent.Client
	Renderer notioncontent.Renderer
}

// SessionFactory builds a session for a request token.
type SessionFactory func(token string) (*Session, error)

// Config configures the gateway handler.
type Config struct {
	// NotionBaseURL overrides the Notion API base URL. Tests point this at a
	// stub server.
	NotionBaseURL string

	// FallbackToken is used when a request carries no credentials.
	FallbackToken string

	// DatabaseID is the default database served by GET /database.
	DatabaseID string

	// Frontmatter enables frontmatter on rendered markdown unless the
	// request's frontmatter query parameter says otherwise.
	Frontmatter bool

	// Sessions overrides how collaborators are built per token. Defaults to
	// the HTTP transport client with the block-based markdown renderer.
	Sessions SessionFactory

	Logger *slog.Logger
}

// Handler serves the gateway routes.
type Handler struct {
	sessions      SessionFactory
	fallbackToken string
	databaseID    string
	frontmatter   bool
	logger        *slog.Logger
}

// NewHandler creates a gateway handler.
func NewHandler(cfg Config) *Handler {
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = notionSessions(cfg.NotionBaseURL)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sessions:      sessions,
		fallbackToken: cfg.FallbackToken,
		databaseID:    notioncontent.CanonicalPageID(cfg.DatabaseID),
		frontmatter:   cfg.Frontmatter,
		logger:        logger,
	}
}

func notionSessions(baseURL string) SessionFactory {
	return func(token string) (*Session, error) {
		var opts []notionapi.ClientOption
		if baseURL != "" {
			opts = append(opts, notionapi.WithBaseURL(baseURL))
		}
		client, err := notionapi.NewClient(token, opts...)
		if err != nil {
			return nil, err
		}
		return &Session{Client: client, Renderer: markdown.New(client)}, nil
	}
}

// Routes returns the gateway routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/page/{id}", h.GetPage)
	r.Get("/database", h.ListDefaultDatabasePages)
	r.Get("/database/{id}", h.ListDatabasePages)
	return r
}

// PageResponse is the JSON representation of a page.
type PageResponse struct {
	ID         string                    `json:"id"`
	Properties notioncontent.PropertyMap `json:"properties"`
	Content    string                    `json:"content"`
}

// ListDatabasePagesResponse is the JSON representation of a windowed
// database listing. Total counts every item the pagination visited, not just
// the window returned.
type ListDatabasePagesResponse struct {
	Total  int      `json:"total"`
	Offset int      `json:"offset"`
	Limit  int      `json:"limit"`
	Pages  []string `json:"pages"`
}

// GetPage serves one page, as markdown or JSON depending on the request's
// content negotiation.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if strings.Contains(id, "..") || strings.Contains(id, "/") {
		h.logger.Warn("invalid page id", "id", id)
		writeErrorStatus(w, r, http.StatusBadRequest, "invalid page id")
		return
	}

	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	frontmatter := h.frontmatter
	if raw := r.URL.Query().Get("frontmatter"); raw != "" {
		frontmatter = raw == "true"
	}

	switch responseFormat(r.Header) {
	case formatMarkdown:
		h.servePageMarkdown(w, r, sess, id, frontmatter)
	default:
		h.servePageJSON(w, r, sess, id)
	}
}

// servePageMarkdown runs the request through the storage accessor pipeline:
// resolve, fetch, render, normalize, optional frontmatter.
func (h *Handler) servePageMarkdown(w http.ResponseWriter, r *http.Request, sess *Session, id string, frontmatter bool) {
	accessor, err := notioncontent.New(
		notioncontent.WithClient(sess.Client),
		notioncontent.WithRenderer(sess.Renderer),
		notioncontent.WithFrontmatter(frontmatter),
		notioncontent.WithLogger(h.logger),
	)
	if err != nil {
		writeErrorStatus(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	content, err := accessor.Read(r.Context(), id+notioncontent.MarkdownSuffix, notioncontent.FullRange)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", markdownContentType)
	_, _ = w.Write(content)
}

func (h *Handler) servePageJSON(w http.ResponseWriter, r *http.Request, sess *Session, id string) {
	pageID, err := notioncontent.ResolvePagePath(id + notioncontent.MarkdownSuffix)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := sess.Client.FetchPage(r.Context(), pageID)
	if err != nil {
		writeError(w, r, notioncontent.TranslateRemoteError(h.logger, "page", pageID, err))
		return
	}

	content, err := sess.Renderer.RenderPage(r.Context(), pageID)
	if err != nil {
		h.logger.Error("failed to render notion page", "page_id", pageID, "error", err)
		writeErrorStatus(w, r, http.StatusInternalServerError, "failed to render page")
		return
	}

	properties := notioncontent.NormalizeProperties(page.Properties)
	if r.URL.Query().Get("keys") == "id" {
		properties = notioncontent.NormalizePropertiesByID(page.Properties)
	}

	render.JSON(w, r, PageResponse{
		ID:         page.ID,
		Properties: properties,
		Content:    content,
	})
}

// ListDatabasePages serves a windowed listing of a database's page ids.
func (h *Handler) ListDatabasePages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if strings.Contains(id, "..") || strings.Contains(id, "/") {
		h.logger.Warn("invalid database id", "id", id)
		writeErrorStatus(w, r, http.StatusBadRequest, "invalid database id")
		return
	}
	h.listDatabase(w, r, id)
}

// ListDefaultDatabasePages serves the server-configured default database.
func (h *Handler) ListDefaultDatabasePages(w http.ResponseWriter, r *http.Request) {
	if h.databaseID == "" {
		writeErrorStatus(w, r, http.StatusNotImplemented, "no default database configured")
		return
	}
	h.listDatabase(w, r, h.databaseID)
}

func (h *Handler) listDatabase(w http.ResponseWriter, r *http.Request, id string) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeErrorStatus(w, r, http.StatusBadRequest, "invalid offset")
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		writeErrorStatus(w, r, http.StatusBadRequest, "invalid limit")
		return
	}

	window := notioncontent.ListWindow{Offset: offset, Limit: limit}
	result, err := notioncontent.CollectPageWindow(r.Context(), h.logger, sess.Client, notioncontent.CanonicalPageID(id), window)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pages := result.PageIDs
	if pages == nil {
		pages = []string{}
	}
	render.JSON(w, r, ListDatabasePagesResponse{
		Total:  result.Visited,
		Offset: offset,
		Limit:  limit,
		Pages:  pages,
	})
}

// session resolves the request's credentials and builds its collaborators,
// writing the error response itself on failure.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	token, ok := TokenFromRequest(r, DefaultExtractors()...)
	if !ok {
		token = h.fallbackToken
	}
	if token == "" {
		h.logger.Warn("missing notion token in request headers")
		writeErrorStatus(w, r, http.StatusUnauthorized, "notion token is required")
		return nil, false
	}

	sess, err := h.sessions(token)
	if err != nil {
		h.logger.Error("failed to create notion session", "error", err)
		writeErrorStatus(w, r, http.StatusUnauthorized, "invalid notion credentials")
		return nil, false
	}
	return sess, true
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}

type responseFormatKind int

const (
	formatJSON responseFormatKind = iota
	formatMarkdown
)

// responseFormat picks the response representation from the request headers.
// A markdown Content-Type wins outright; otherwise the Accept list is walked
// in order, with JSON as the final default.
func responseFormat(headers http.Header) responseFormatKind {
	if strings.HasPrefix(headers.Get("Content-Type"), "text/markdown") {
		return formatMarkdown
	}

	for _, item := range strings.Split(headers.Get("Accept"), ",") {
		item = strings.TrimSpace(item)
		switch {
		case strings.HasPrefix(item, "text/markdown"), strings.HasPrefix(item, "text/*"):
			return formatMarkdown
		case strings.HasPrefix(item, "application/json"), strings.HasPrefix(item, "application/*"), item == "*/*":
			return formatJSON
		}
	}
	return formatJSON
}
