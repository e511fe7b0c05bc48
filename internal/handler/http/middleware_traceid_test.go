package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/altair-config/internal/logger"
	"github.com/MKhiriev/altair-config/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

	rr, req := executeWithTraceID(h, "my-custom-trace-id")

	require.NotNil(t, req)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

	rr, req := executeWithTraceID(h, "")

	require.NotNil(t, req)
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLogger("test", &buf), traceIDs: utils.NewUUIDGenerator()}

	_, req := executeWithTraceID(h, "trace-abc")
	require.NotNil(t, req)

	logger.FromContext(req.Context()).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-abc"`)
	assert.Contains(t, buf.String(), "inside handler")
}
