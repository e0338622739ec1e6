package markdown_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/notion-content/pkg/notioncontent/markdown"
	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

// fakeSource serves pre-sliced pages of children per block id.
type fakeSource struct {
	pages map[string][]*notionapi.BlockChildrenResponse
	calls map[string]int
	err   error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pages: make(map[string][]*notionapi.BlockChildrenResponse),
		calls: make(map[string]int),
	}
}

func (f *fakeSource) add(blockID string, blocks ...notionapi.Block) {
	f.pages[blockID] = append(f.pages[blockID], &notionapi.BlockChildrenResponse{Results: blocks})
}

func (f *fakeSource) BlockChildren(ctx context.Context, blockID string, cursor string, pageSize int) (*notionapi.BlockChildrenResponse, error) {
	if f.err != nil {
		return nil, f.err
	}

	idx := f.calls[blockID]
	f.calls[blockID]++

	pages := f.pages[blockID]
	if idx >= len(pages) {
		return &notionapi.BlockChildrenResponse{}, nil
	}

	resp := *pages[idx]
	if idx < len(pages)-1 {
		next := blockID
		resp.HasMore = true
		resp.NextCursor = &next
	}
	return &resp, nil
}

func text(s string) []notionapi.RichText {
	return []notionapi.RichText{{PlainText: s}}
}

func TestRenderPageBlockKinds(t *testing.T) {
	source := newFakeSource()
	source.add("page-1",
		notionapi.Block{ID: "b1", Heading1: &notionapi.RichTextBlock{RichText: text("Title")}},
		notionapi.Block{ID: "b2", Paragraph: &notionapi.RichTextBlock{RichText: text("Intro paragraph.")}},
		notionapi.Block{ID: "b3", Heading2: &notionapi.RichTextBlock{RichText: text("Details")}},
		notionapi.Block{ID: "b4", Heading3: &notionapi.RichTextBlock{RichText: text("Fine print")}},
		notionapi.Block{ID: "b5", Quote: &notionapi.RichTextBlock{RichText: text("Wise words")}},
		notionapi.Block{ID: "b6", Code: &notionapi.CodeBlock{RichText: text(`fmt.Println("hi")`), Language: "go"}},
		notionapi.Block{ID: "b7", Bookmark: &notionapi.BookmarkBlock{URL: "https://example.com"}},
		notionapi.Block{ID: "b8", Divider: &struct{}{}},
	)

	got, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)

	want := "# Title\n\n" +
		"Intro paragraph.\n\n" +
		"## Details\n\n" +
		"### Fine print\n\n" +
		"> Wise words\n\n" +
		"```go\nfmt.Println(\"hi\")\n```\n\n" +
		"[https://example.com](https://example.com)\n\n" +
		"---\n"
	assert.Equal(t, want, got)
}

func TestRenderPageLists(t *testing.T) {
	source := newFakeSource()
	source.add("page-1",
		notionapi.Block{ID: "b1", BulletedListItem: &notionapi.RichTextBlock{RichText: text("apples")}},
		notionapi.Block{ID: "b2", BulletedListItem: &notionapi.RichTextBlock{RichText: text("pears")}},
		notionapi.Block{ID: "b3", NumberedListItem: &notionapi.RichTextBlock{RichText: text("first")}},
		notionapi.Block{ID: "b4", NumberedListItem: &notionapi.RichTextBlock{RichText: text("second")}},
		notionapi.Block{ID: "b5", ToDo: &notionapi.ToDoBlock{RichText: text("ship it"), Checked: true}},
		notionapi.Block{ID: "b6", ToDo: &notionapi.ToDoBlock{RichText: text("write docs")}},
	)

	got, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)

	want := "- apples\n" +
		"- pears\n" +
		"1. first\n" +
		"2. second\n" +
		"- [x] ship it\n" +
		"- [ ] write docs\n"
	assert.Equal(t, want, got)
}

func TestRenderPageNumberingResetsAfterInterruption(t *testing.T) {
	source := newFakeSource()
	source.add("page-1",
		notionapi.Block{ID: "b1", NumberedListItem: &notionapi.RichTextBlock{RichText: text("one")}},
		notionapi.Block{ID: "b2", NumberedListItem: &notionapi.RichTextBlock{RichText: text("two")}},
		notionapi.Block{ID: "b3", Paragraph: &notionapi.RichTextBlock{RichText: text("break")}},
		notionapi.Block{ID: "b4", NumberedListItem: &notionapi.RichTextBlock{RichText: text("again")}},
	)

	got, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)

	want := "1. one\n" +
		"2. two\n" +
		"break\n\n" +
		"1. again\n"
	assert.Equal(t, want, got)
}

func TestRenderPageNestedListItems(t *testing.T) {
	source := newFakeSource()
	source.add("page-1",
		notionapi.Block{ID: "outer", HasChildren: true, BulletedListItem: &notionapi.RichTextBlock{RichText: text("outer")}},
	)
	source.add("outer",
		notionapi.Block{ID: "inner", BulletedListItem: &notionapi.RichTextBlock{RichText: text("inner")}},
	)

	got, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)

	want := "- outer\n" +
		"  - inner\n"
	assert.Equal(t, want, got)
}

func TestRenderPageFollowsCursor(t *testing.T) {
	source := newFakeSource()
	source.add("page-1", notionapi.Block{ID: "b1", Paragraph: &notionapi.RichTextBlock{RichText: text("page one")}})
	source.add("page-1", notionapi.Block{ID: "b2", Paragraph: &notionapi.RichTextBlock{RichText: text("page two")}})

	got, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)

	assert.Equal(t, "page one\n\npage two\n", got)
	assert.Equal(t, 2, source.calls["page-1"])
}

func TestRenderPageSkipsUnknownAndEmptyBlocks(t *testing.T) {
	source := newFakeSource()
	source.add("page-1",
		notionapi.Block{ID: "b1", Type: "synced_block"},
		notionapi.Block{ID: "b2", Paragraph: &notionapi.RichTextBlock{}},
		notionapi.Block{ID: "b3", Paragraph: &notionapi.RichTextBlock{RichText: text("kept")}},
	)

	got, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)

	assert.Equal(t, "kept\n", got)
}

func TestRenderPagePropagatesSourceError(t *testing.T) {
	source := newFakeSource()
	source.err = errors.New("boom")

	_, err := markdown.New(source).RenderPage(context.Background(), "page-1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
}

func TestRenderPageEmptyPage(t *testing.T) {
	got, err := markdown.New(newFakeSource()).RenderPage(context.Background(), "page-1")
	require.NoError(t, err)
	assert.Equal(t, "\n", got)
}
