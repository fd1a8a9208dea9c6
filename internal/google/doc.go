// Package google provides service account authentication for Google APIs.
//
// Credentials come from the environment: GOOGLE_SERVICE_ACCOUNT_KEY holds the
// key JSON inline, or GOOGLE_SERVICE_ACCOUNT_KEY_FILE names a file containing
// it. The CredentialsProvider interface allows other key sources to be
// plugged in for testing.
package google
