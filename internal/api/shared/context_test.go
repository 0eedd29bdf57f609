package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTraceIDContext(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := WithTraceID(context.Background(), "fixed")
	assert.Equal(t, "fixed", GetTraceID(ctx))
}

func TestRequestTraceID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		reused  bool
	}{
		{"valid uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"missing", "", false},
		{"not a uuid", "not-a-uuid", false},
		{"markup", "<script>alert(1)</script>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(TraceIDHeader, tt.inbound)
			}

			got := RequestTraceID(req)

			assert.NoError(t, uuid.Validate(got))
			if tt.reused {
				assert.Equal(t, tt.inbound, got)
			} else {
				assert.NotEqual(t, tt.inbound, got)
			}
		})
	}

	a := RequestTraceID(httptest.NewRequest(http.MethodGet, "/", nil))
	b := RequestTraceID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, a, b, "generated trace IDs are unique")
}
