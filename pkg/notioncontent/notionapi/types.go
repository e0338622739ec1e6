package notionapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PropertyType identifies the schema kind of a page property as reported by
// the Notion API.
type PropertyType string

// Property type constants (typed).
const (
	PropertyTypeTitle          PropertyType = "title"
	PropertyTypeRichText       PropertyType = "rich_text"
	PropertyTypeSelect         PropertyType = "select"
	PropertyTypeStatus         PropertyType = "status"
	PropertyTypeMultiSelect    PropertyType = "multi_select"
	PropertyTypeCheckbox       PropertyType = "checkbox"
	PropertyTypeNumber         PropertyType = "number"
	PropertyTypeURL            PropertyType = "url"
	PropertyTypeEmail          PropertyType = "email"
	PropertyTypePhoneNumber    PropertyType = "phone_number"
	PropertyTypeDate           PropertyType = "date"
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypePeople         PropertyType = "people"
)

// RichText is one run of formatted text within a property or block.
type RichText struct {
	Type      string  `json:"type,omitempty"`
	PlainText string  `json:"plain_text"`
	Href      *string `json:"href,omitempty"`
}

// PlainTextAll concatenates the plain text of all runs.
func PlainTextAll(runs []RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}

// SelectOption is a select, status, or multi-select option.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// User is a Notion workspace member or bot referenced by a people property.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// DateTime wraps time.Time to accept both of the wire formats Notion emits
// for date properties: a bare calendar date ("2006-01-02") or a full RFC 3339
// timestamp. A bare date decodes to midnight UTC.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return fmt.Errorf("invalid notion date %q: %w", raw, err)
	}
	d.Time = t.UTC()
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// DateValue is the payload of a date property.
type DateValue struct {
	Start *DateTime `json:"start"`
	End   *DateTime `json:"end,omitempty"`
}

// Property is one page property as returned by the Notion API. The Type tag
// selects which payload field is populated; all payload fields for other
// kinds stay at their zero value.
type Property struct {
	ID   string       `json:"id,omitempty"`
	Type PropertyType `json:"type"`

	Title          []RichText     `json:"title,omitempty"`
	RichText       []RichText     `json:"rich_text,omitempty"`
	Select         *SelectOption  `json:"select,omitempty"`
	Status         *SelectOption  `json:"status,omitempty"`
	MultiSelect    []SelectOption `json:"multi_select,omitempty"`
	Checkbox       bool           `json:"checkbox,omitempty"`
	Number         *float64       `json:"number,omitempty"`
	URL            *string        `json:"url,omitempty"`
	Email          *string        `json:"email,omitempty"`
	PhoneNumber    *string        `json:"phone_number,omitempty"`
	Date           *DateValue     `json:"date,omitempty"`
	CreatedTime    *time.Time     `json:"created_time,omitempty"`
	LastEditedTime *time.Time     `json:"last_edited_time,omitempty"`
	People         []User         `json:"people,omitempty"`
}

// Page is one content item in a Notion workspace.
type Page struct {
	ID             string              `json:"id"`
	Object         string              `json:"object,omitempty"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	Archived       bool                `json:"archived,omitempty"`
	URL            string              `json:"url,omitempty"`
	Properties     map[string]Property `json:"properties"`
}

// QueryDatabaseRequest is one page-worth of a database query. StartCursor is
// the opaque continuation token from the previous response; empty means
// start from the beginning.
type QueryDatabaseRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// QueryDatabaseResponse is one page of database query results. NextCursor is
// nil once the collection is exhausted.
type QueryDatabaseResponse struct {
	Object     string  `json:"object,omitempty"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// Block is one content block of a page. Only the kinds the markdown renderer
// understands carry a typed payload; everything else is identified by Type
// alone and skipped downstream.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children,omitempty"`

	Paragraph        *RichTextBlock `json:"paragraph,omitempty"`
	Heading1         *RichTextBlock `json:"heading_1,omitempty"`
	Heading2         *RichTextBlock `json:"heading_2,omitempty"`
	Heading3         *RichTextBlock `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBlock `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBlock `json:"numbered_list_item,omitempty"`
	Quote            *RichTextBlock `json:"quote,omitempty"`
	ToDo             *ToDoBlock     `json:"to_do,omitempty"`
	Code             *CodeBlock     `json:"code,omitempty"`
	Bookmark         *BookmarkBlock `json:"bookmark,omitempty"`
	Divider          *struct{}      `json:"divider,omitempty"`
}

// RichTextBlock is the payload shared by text-bearing block kinds.
type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// ToDoBlock is the payload of a to_do block.
type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// CodeBlock is the payload of a code block.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language,omitempty"`
}

// BookmarkBlock is the payload of a bookmark block.
type BookmarkBlock struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

// BlockChildrenResponse is one page of a block-children listing.
type BlockChildrenResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}
