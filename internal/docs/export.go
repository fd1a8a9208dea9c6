package docs

import (
	"context"
	"fmt"
	"io"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// HTMLConverter turns exported document HTML into Markdown. The read path
// goes through Drive's HTML export rather than walking the Docs body tree,
// so the fidelity of reads is bounded by this conversion.
type HTMLConverter interface {
	Convert(html string) (string, error)
}

type defaultHTMLConverter struct{}

func (defaultHTMLConverter) Convert(html string) (string, error) {
	return htmltomarkdown.ConvertString(html)
}

// exportHTML downloads a document's content as HTML via the Drive export
// endpoint
func (c *Client) exportHTML(ctx context.Context, documentID string) (string, error) {
	resp, err := c.driveService.Files.Export(documentID, "text/html").Context(ctx).Download()
	if err != nil {
		return "", fmt.Errorf("failed to export document %s: %w", documentID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read export of document %s: %w", documentID, err)
	}

	return string(body), nil
}
