package instrumentation

import (
	"strings"
	"testing"
)

func TestAnonymizeDocumentID(t *testing.T) {
	if AnonymizeDocumentID("") != "unknown" {
		t.Error(`AnonymizeDocumentID("") should be "unknown"`)
	}

	hashed := AnonymizeDocumentID("1ABC123xyz")
	if !strings.HasPrefix(hashed, "doc:") {
		t.Errorf("AnonymizeDocumentID = %q, want doc: prefix", hashed)
	}
	if strings.Contains(hashed, "1ABC123xyz") {
		t.Error("anonymized ID should not contain the raw ID")
	}

	// Stable across calls, distinct across inputs
	if AnonymizeDocumentID("1ABC123xyz") != hashed {
		t.Error("AnonymizeDocumentID should be deterministic")
	}
	if AnonymizeDocumentID("1other") == hashed {
		t.Error("different IDs should hash differently")
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationList:    "list",
		OperationGet:     "get",
		OperationCreate:  "create",
		OperationUpdate:  "update",
		OperationExport:  "export",
		OperationComment: "comment",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
