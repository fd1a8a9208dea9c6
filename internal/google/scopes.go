package google

// Scopes are the Google API scopes the service account key must be granted.
//
// The scopes provide access to:
//   - Google Drive: full access (file and folder management, comments)
//   - Google Docs: full access (document content editing)
var Scopes = []string{
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/documents",
}
