// Package notion publishes generated markdown as Notion pages.
package notion

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/pkg/markdown"
	"github.com/pkg/errors"
)

const (
	// Notion rejects rich text objects longer than this.
	maxTextLength = 2000
	// and create/append requests with more children than this.
	maxChildren = 100

	integrationTokenPrefix = "ntn_"
)

var ErrNoParentPage = errors.New("no parent page found; set NOTION_PARENT_PAGE_ID to a page shared with the integration or pass a database_id")

type Exporter struct {
	apiKey       func() string
	parentPageID string
	httpClient   *http.Client
}

func New(apiKey func() string, parentPageID string, httpClient *http.Client) *Exporter {
	return &Exporter{apiKey: apiKey, parentPageID: strings.TrimSpace(parentPageID), httpClient: httpClient}
}

func (e *Exporter) client() *notionapi.Client {
	var opts []notionapi.ClientOption
	if e.httpClient != nil {
		opts = append(opts, notionapi.WithHTTPClient(e.httpClient))
	}
	return notionapi.NewClient(notionapi.Token(e.apiKey()), opts...)
}

func (e *Exporter) Export(ctx context.Context, title, content, databaseID string) (string, error) {
	if e.apiKey == nil || e.apiKey() == "" {
		return "", &integrations.ExportError{Err: errors.Wrap(integrations.ErrMissingAPIKey, "NOTION_API_KEY")}
	}
	api := e.client()

	req := &notionapi.PageCreateRequest{}
	if databaseID != "" {
		req.Parent = notionapi.Parent{Type: notionapi.ParentTypeDatabaseID, DatabaseID: notionapi.DatabaseID(databaseID)}
		req.Properties = notionapi.Properties{"Name": titleProperty(title)}
	} else {
		parent, err := e.resolveParent(ctx, api)
		if err != nil {
			return "", err
		}
		req.Parent = notionapi.Parent{Type: notionapi.ParentTypePageID, PageID: notionapi.PageID(parent)}
		req.Properties = notionapi.Properties{"title": titleProperty(title)}
	}

	blocks := Blocks(markdown.Parse(content))
	first, rest := blocks, []notionapi.Block(nil)
	if len(blocks) > maxChildren {
		first, rest = blocks[:maxChildren], blocks[maxChildren:]
	}
	req.Children = first

	page, err := api.Page.Create(ctx, req)
	if err != nil {
		return "", &integrations.ExportError{Err: err}
	}

	for len(rest) > 0 {
		n := len(rest)
		if n > maxChildren {
			n = maxChildren
		}
		_, err := api.Block.AppendChildren(ctx, notionapi.BlockID(page.ID), &notionapi.AppendBlockChildrenRequest{Children: rest[:n]})
		if err != nil {
			return "", &integrations.ExportError{Err: errors.Wrap(err, "append blocks")}
		}
		rest = rest[n:]
	}

	log.Printf("[Notion] created page %s with %d blocks", page.ID, len(blocks))
	return page.URL, nil
}

// resolveParent returns the configured parent page, or the first page the
// integration can see when none is configured.
func (e *Exporter) resolveParent(ctx context.Context, api *notionapi.Client) (string, error) {
	if e.parentPageID != "" && !strings.HasPrefix(e.parentPageID, integrationTokenPrefix) {
		return e.parentPageID, nil
	}

	resp, err := api.Search.Do(ctx, &notionapi.SearchRequest{
		Filter: notionapi.SearchFilter{Property: "object", Value: "page"},
	})
	if err != nil {
		return "", &integrations.ExportError{Err: errors.Wrap(err, "failed to find parent page")}
	}
	for _, obj := range resp.Results {
		if page, ok := obj.(*notionapi.Page); ok {
			return string(page.ID), nil
		}
	}
	return "", &integrations.ExportError{Err: ErrNoParentPage}
}

func titleProperty(title string) notionapi.TitleProperty {
	return notionapi.TitleProperty{Title: richText(title)}
}

func richText(text string) []notionapi.RichText {
	var out []notionapi.RichText
	for _, part := range markdown.Chunk(text, maxTextLength) {
		out = append(out, notionapi.RichText{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: part}})
	}
	return out
}

// Blocks maps parsed markdown to Notion block objects.
func Blocks(parsed []markdown.Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(parsed))
	for _, b := range parsed {
		text := richText(b.Text)
		basic := notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: notionapi.BlockType(b.Kind)}
		switch b.Kind {
		case markdown.Heading1:
			out = append(out, &notionapi.Heading1Block{BasicBlock: basic, Heading1: notionapi.Heading{RichText: text}})
		case markdown.Heading2:
			out = append(out, &notionapi.Heading2Block{BasicBlock: basic, Heading2: notionapi.Heading{RichText: text}})
		case markdown.Heading3:
			out = append(out, &notionapi.Heading3Block{BasicBlock: basic, Heading3: notionapi.Heading{RichText: text}})
		case markdown.Bullet:
			out = append(out, &notionapi.BulletedListItemBlock{BasicBlock: basic, BulletedListItem: notionapi.ListItem{RichText: text}})
		case markdown.Numbered:
			out = append(out, &notionapi.NumberedListItemBlock{BasicBlock: basic, NumberedListItem: notionapi.ListItem{RichText: text}})
		case markdown.Paragraph:
			out = append(out, &notionapi.ParagraphBlock{BasicBlock: basic, Paragraph: notionapi.Paragraph{RichText: text}})
		default:
			panic(fmt.Sprintf("notion: unhandled block kind %q", b.Kind))
		}
	}
	return out
}

var _ integrations.PageExporter = (*Exporter)(nil)
