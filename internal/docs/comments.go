package docs

import (
	"context"
	"fmt"

	drive "google.golang.org/api/drive/v3"
)

// ListComments retrieves all active comment threads on a document, including
// their replies
func (c *Client) ListComments(ctx context.Context, idOrURL string) ([]CommentInfo, error) {
	documentID := ParseDocumentID(idOrURL)

	res, err := c.driveService.Comments.List(documentID).
		IncludeDeleted(false).
		Fields("comments(id,author/displayName,content,resolved,createdTime,modifiedTime,quotedFileContent/value,replies(id,author/displayName,content,createdTime))").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for %s: %w", documentID, err)
	}

	comments := make([]CommentInfo, 0, len(res.Comments))
	for _, comment := range res.Comments {
		info := CommentInfo{
			ID:          comment.Id,
			Content:     comment.Content,
			Resolved:    comment.Resolved,
			CreatedTime: comment.CreatedTime,
		}
		if comment.Author != nil {
			info.Author = comment.Author.DisplayName
		}
		if comment.QuotedFileContent != nil {
			info.QuotedText = comment.QuotedFileContent.Value
		}
		for _, reply := range comment.Replies {
			replyInfo := ReplyInfo{
				ID:          reply.Id,
				Content:     reply.Content,
				CreatedTime: reply.CreatedTime,
			}
			if reply.Author != nil {
				replyInfo.Author = reply.Author.DisplayName
			}
			info.Replies = append(info.Replies, replyInfo)
		}
		comments = append(comments, info)
	}

	return comments, nil
}

// ReplyToComment adds a reply to an existing comment thread
func (c *Client) ReplyToComment(ctx context.Context, idOrURL, commentID, content string) error {
	documentID := ParseDocumentID(idOrURL)

	_, err := c.driveService.Replies.Create(documentID, commentID, &drive.Reply{
		Content: content,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to reply to comment %s on %s: %w", commentID, documentID, err)
	}

	return nil
}

// ResolveComment marks a comment thread as resolved
func (c *Client) ResolveComment(ctx context.Context, idOrURL, commentID string) error {
	documentID := ParseDocumentID(idOrURL)

	_, err := c.driveService.Comments.Update(documentID, commentID, &drive.Comment{
		Resolved: true,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to resolve comment %s on %s: %w", commentID, documentID, err)
	}

	return nil
}
