package middleware

import (
	"testing"

	"github.com/mattear/doclens-ai/internal/domain"
)

func TestAuditAction(t *testing.T) {
	cases := []struct {
		method, path, want string
	}{
		{"POST", "/api/v1/documents", domain.AuditActionDocumentCreate},
		{"POST", "/api/v1/documents/", domain.AuditActionDocumentCreate},
		{"DELETE", "/api/v1/documents/abc", domain.AuditActionDocumentDelete},
		{"POST", "/api/v1/clusters/run", domain.AuditActionClusterRun},
		{"POST", "/api/v1/documents/abc/summarize", domain.AuditActionEnrichment},
		{"POST", "/api/v1/documents/abc/analyze", domain.AuditActionEnrichment},
		{"POST", "/api/v1/documents/abc/tags", domain.AuditActionEnrichment},
		{"PUT", "/api/v1/something", "http_request"},
	}
	for _, tc := range cases {
		if got := auditAction(tc.method, tc.path); got != tc.want {
			t.Errorf("auditAction(%s %s) = %q, want %q", tc.method, tc.path, got, tc.want)
		}
	}
}
