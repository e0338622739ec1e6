// Package markdown renders Notion block content as markdown text.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

const childrenPageSize = 100

// BlockSource retrieves one page of a block's children at a time.
type BlockSource interface {
	BlockChildren(ctx context.Context, blockID string, cursor string, pageSize int) (*notionapi.BlockChildrenResponse, error)
}

// Renderer converts a page's block tree into markdown. Unrecognized block
// kinds are skipped rather than failing the whole render.
type Renderer struct {
	source BlockSource
}

// New creates a Renderer over the given block source.
func New(source BlockSource) *Renderer {
	return &Renderer{source: source}
}

// RenderPage renders the full block tree of a page as markdown.
func (r *Renderer) RenderPage(ctx context.Context, pageID string) (string, error) {
	var b strings.Builder
	if err := r.renderChildren(ctx, &b, pageID, 0); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// renderChildren walks one block's children exhaustively, following the
// continuation cursor until the listing reports no more results.
func (r *Renderer) renderChildren(ctx context.Context, b *strings.Builder, blockID string, depth int) error {
	cursor := ""
	ordinal := 0

	for {
		resp, err := r.source.BlockChildren(ctx, blockID, cursor, childrenPageSize)
		if err != nil {
			return err
		}

		for _, block := range resp.Results {
			if block.NumberedListItem != nil {
				ordinal++
			} else {
				ordinal = 0
			}
			if err := r.renderBlock(ctx, b, block, depth, ordinal); err != nil {
				return err
			}
		}

		if resp.NextCursor == nil || *resp.NextCursor == "" {
			return nil
		}
		cursor = *resp.NextCursor
	}
}

func (r *Renderer) renderBlock(ctx context.Context, b *strings.Builder, block notionapi.Block, depth, ordinal int) error {
	indent := strings.Repeat("  ", depth)
	nested := false

	switch {
	case block.Paragraph != nil:
		if text := notionapi.PlainTextAll(block.Paragraph.RichText); text != "" {
			fmt.Fprintf(b, "%s%s\n\n", indent, text)
		}
	case block.Heading1 != nil:
		fmt.Fprintf(b, "%s# %s\n\n", indent, notionapi.PlainTextAll(block.Heading1.RichText))
	case block.Heading2 != nil:
		fmt.Fprintf(b, "%s## %s\n\n", indent, notionapi.PlainTextAll(block.Heading2.RichText))
	case block.Heading3 != nil:
		fmt.Fprintf(b, "%s### %s\n\n", indent, notionapi.PlainTextAll(block.Heading3.RichText))
	case block.BulletedListItem != nil:
		fmt.Fprintf(b, "%s- %s\n", indent, notionapi.PlainTextAll(block.BulletedListItem.RichText))
		nested = true
	case block.NumberedListItem != nil:
		fmt.Fprintf(b, "%s%d. %s\n", indent, ordinal, notionapi.PlainTextAll(block.NumberedListItem.RichText))
		nested = true
	case block.ToDo != nil:
		mark := " "
		if block.ToDo.Checked {
			mark = "x"
		}
		fmt.Fprintf(b, "%s- [%s] %s\n", indent, mark, notionapi.PlainTextAll(block.ToDo.RichText))
		nested = true
	case block.Quote != nil:
		fmt.Fprintf(b, "%s> %s\n\n", indent, notionapi.PlainTextAll(block.Quote.RichText))
	case block.Code != nil:
		fmt.Fprintf(b, "%s```%s\n%s\n%s```\n\n",
			indent, block.Code.Language, notionapi.PlainTextAll(block.Code.RichText), indent)
	case block.Bookmark != nil:
		caption := notionapi.PlainTextAll(block.Bookmark.Caption)
		if caption == "" {
			caption = block.Bookmark.URL
		}
		fmt.Fprintf(b, "%s[%s](%s)\n\n", indent, caption, block.Bookmark.URL)
	case block.Divider != nil:
		fmt.Fprintf(b, "%s---\n\n", indent)
	}

	if nested && block.HasChildren {
		return r.renderChildren(ctx, b, block.ID, depth+1)
	}
	return nil
}
