package docs

// DocumentInfo describes a document in the managed Drive folder
type DocumentInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
}

// DocumentMetadata represents metadata about a Google Drive file
type DocumentMetadata struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	CreatedTime  string `json:"createdTime"`
	ModifiedTime string `json:"modifiedTime"`
	Size         int64  `json:"size,omitempty"`
	Owners       []User `json:"owners,omitempty"`
}

// User represents a Google Drive user
type User struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

// CommentInfo represents a comment thread on a document
type CommentInfo struct {
	ID          string      `json:"id"`
	Author      string      `json:"author"`
	Content     string      `json:"content"`
	Resolved    bool        `json:"resolved"`
	CreatedTime string      `json:"createdTime,omitempty"`
	QuotedText  string      `json:"quotedText,omitempty"`
	Replies     []ReplyInfo `json:"replies,omitempty"`
}

// ReplyInfo represents a single reply within a comment thread
type ReplyInfo struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Content     string `json:"content"`
	CreatedTime string `json:"createdTime,omitempty"`
}
