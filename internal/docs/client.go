package docs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/kuali/docs-mcp/internal/logging"
)

const (
	mimeTypeDocument = "application/vnd.google-apps.document"
	mimeTypeFolder   = "application/vnd.google-apps.folder"
)

// docIDPattern extracts the document ID from a Docs URL of the form
// https://docs.google.com/document/d/<id>/edit
var docIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// Config holds the Drive-side configuration for a Client
type Config struct {
	// RootFolderID is the Drive folder all managed documents live under
	RootFolderID string
}

// Client wraps the Google Docs and Drive API services for documents managed
// under a single Drive folder
type Client struct {
	docsService  *docs.Service
	driveService *drive.Service
	rootFolderID string
	html         HTMLConverter
}

// NewClient creates a new Google Docs client backed by the provided
// authenticated HTTP client
func NewClient(ctx context.Context, httpClient *http.Client, cfg Config) (*Client, error) {
	if cfg.RootFolderID == "" {
		return nil, fmt.Errorf("root folder ID is required")
	}

	docsService, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		docsService:  docsService,
		driveService: driveService,
		rootFolderID: cfg.RootFolderID,
		html:         defaultHTMLConverter{},
	}, nil
}

// ParseDocumentID accepts either a bare document ID or a full Docs URL and
// returns the document ID
func ParseDocumentID(idOrURL string) string {
	if m := docIDPattern.FindStringSubmatch(idOrURL); m != nil {
		return m[1]
	}
	return idOrURL
}

// DocumentURL returns the canonical edit URL for a document ID
func DocumentURL(documentID string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", documentID)
}

// getOrCreateSubfolder looks up a subfolder by name under the root folder,
// creating it if it does not exist, and returns its ID
func (c *Client) getOrCreateSubfolder(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQuery(name), c.rootFolderID, mimeTypeFolder)

	res, err := c.driveService.Files.List().
		Q(query).
		Fields("files(id)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up folder %q: %w", name, err)
	}
	if len(res.Files) > 0 {
		return res.Files[0].Id, nil
	}

	folder, err := c.driveService.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeTypeFolder,
		Parents:  []string{c.rootFolderID},
	}).Fields("id").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}

	return folder.Id, nil
}

// resolveParent returns the folder ID documents should be placed in or
// listed from: a named subfolder when given, the root folder otherwise
func (c *Client) resolveParent(ctx context.Context, subfolder string) (string, error) {
	if subfolder == "" {
		return c.rootFolderID, nil
	}
	return c.getOrCreateSubfolder(ctx, subfolder)
}

// escapeQuery escapes single quotes for embedding in a Drive query string
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}

// CreateDocument creates a new Google Doc with the given title, fills it
// with the compiled Markdown content, and returns its identity. When
// subfolder is non-empty the document is placed in that subfolder of the
// root folder, creating it on first use.
func (c *Client) CreateDocument(ctx context.Context, title, content, subfolder string) (*DocumentInfo, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	parentID, err := c.resolveParent(ctx, subfolder)
	if err != nil {
		return nil, err
	}

	file, err := c.driveService.Files.Create(&drive.File{
		Name:     title,
		MimeType: mimeTypeDocument,
		Parents:  []string{parentID},
	}).Fields("id").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create document %q: %w", title, err)
	}

	requests := MarkdownToRequests(content)
	if len(requests) > 0 {
		_, err = c.docsService.Documents.BatchUpdate(file.Id, &docs.BatchUpdateDocumentRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to write content to document %s: %w", file.Id, err)
		}
	}

	slog.Info("document created",
		logging.Operation("create"), logging.Document(file.Id), logging.Folder(subfolder))

	return &DocumentInfo{
		ID:   file.Id,
		Name: title,
		URL:  DocumentURL(file.Id),
	}, nil
}

// UpdateDocument replaces the entire body of an existing document with the
// compiled Markdown content. The existing body is deleted and the new
// content inserted in a single batchUpdate call.
func (c *Client) UpdateDocument(ctx context.Context, idOrURL, content string) error {
	documentID := ParseDocumentID(idOrURL)

	doc, err := c.docsService.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get document %s: %w", documentID, err)
	}

	// The body always ends with an immovable final newline, so an empty
	// document has endIndex 2 and nothing deletable.
	endIndex := int64(2)
	if doc.Body != nil && len(doc.Body.Content) > 0 {
		endIndex = doc.Body.Content[len(doc.Body.Content)-1].EndIndex
	}

	var requests []*docs.Request
	if endIndex > 2 {
		requests = append(requests, &docs.Request{
			DeleteContentRange: &docs.DeleteContentRangeRequest{
				Range: &docs.Range{StartIndex: 1, EndIndex: endIndex - 1},
			},
		})
	}
	requests = append(requests, MarkdownToRequests(content)...)

	if len(requests) == 0 {
		return nil
	}

	_, err = c.docsService.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", documentID, err)
	}

	slog.Info("document updated",
		logging.Operation("update"), logging.Document(documentID), "requests", len(requests))

	return nil
}

// ReadDocument exports a document as HTML through the Drive API and
// converts it to Markdown
func (c *Client) ReadDocument(ctx context.Context, idOrURL string) (string, error) {
	documentID := ParseDocumentID(idOrURL)

	html, err := c.exportHTML(ctx, documentID)
	if err != nil {
		return "", err
	}

	markdown, err := c.html.Convert(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert document %s to markdown: %w", documentID, err)
	}

	return markdown, nil
}

// ListDocuments lists the Google Docs in the root folder or a named
// subfolder, most recently modified first
func (c *Client) ListDocuments(ctx context.Context, subfolder string) ([]DocumentInfo, error) {
	parentID, err := c.resolveParent(ctx, subfolder)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false",
		parentID, mimeTypeDocument)

	res, err := c.driveService.Files.List().
		Q(query).
		Fields("files(id, name, modifiedTime)").
		OrderBy("modifiedTime desc").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	slog.Debug("documents listed",
		logging.Operation("list"), logging.Folder(subfolder), "count", len(res.Files))

	infos := make([]DocumentInfo, 0, len(res.Files))
	for _, f := range res.Files {
		infos = append(infos, DocumentInfo{
			ID:           f.Id,
			Name:         f.Name,
			URL:          DocumentURL(f.Id),
			ModifiedTime: f.ModifiedTime,
		})
	}

	return infos, nil
}

// GetDocumentMetadata retrieves Drive metadata for a document
func (c *Client) GetDocumentMetadata(ctx context.Context, idOrURL string) (*DocumentMetadata, error) {
	documentID := ParseDocumentID(idOrURL)

	file, err := c.driveService.Files.Get(documentID).
		Fields("id, name, mimeType, createdTime, modifiedTime, size, owners").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata for %s: %w", documentID, err)
	}

	metadata := &DocumentMetadata{
		ID:           file.Id,
		Name:         file.Name,
		MimeType:     file.MimeType,
		CreatedTime:  file.CreatedTime,
		ModifiedTime: file.ModifiedTime,
		Size:         file.Size,
	}
	for _, owner := range file.Owners {
		metadata.Owners = append(metadata.Owners, User{
			DisplayName:  owner.DisplayName,
			EmailAddress: owner.EmailAddress,
		})
	}

	return metadata, nil
}
