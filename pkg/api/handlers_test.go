package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcsr-io/qcsr/pkg/codec"
	"github.com/qcsr-io/qcsr/pkg/stream"
)

func testServer(t *testing.T, apiKey string) (*Server, string) {
	t.Helper()
	dataDir := t.TempDir()
	cfg := ServerConfig{Bind: "127.0.0.1", Port: 0, APIKey: apiKey, DataDir: dataDir}
	return NewServer(cfg, NewMetrics(), zerolog.Nop()), dataDir
}

func seedFile(t *testing.T, dataDir, name string, chunks []codec.Chunk) {
	t.Helper()
	require.NoError(t, stream.Save(filepath.Join(dataDir, name), chunks))
}

func doRequest(t *testing.T, srv *Server, target, apiKey string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return raw
}

func writeFile(t *testing.T, path string, raw []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, raw, 0o644))
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(t, "")
	rec, resp := doRequest(t, srv, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleListFiles(t *testing.T) {
	srv, dataDir := testServer(t, "")
	seedFile(t, dataDir, "a.qcsr", []codec.Chunk{{Value: codec.Bool(true)}})
	seedFile(t, dataDir, "b.qcsr", nil)

	rec, resp := doRequest(t, srv, "/v1/files", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	files, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, files, 2)
}

func TestHandleFileSummary(t *testing.T) {
	srv, dataDir := testServer(t, "")
	seedFile(t, dataDir, "state.qcsr", []codec.Chunk{
		{Mask: codec.BitMask{true, false, true}, Value: codec.Float64(1.5)},
		{Mask: codec.BitMask{true}, Value: codec.Float64(2.5)},
		{Mask: nil, Value: codec.Int32(-1)},
	})

	rec, resp := doRequest(t, srv, "/v1/files/state.qcsr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["chunks"])
	assert.Equal(t, float64(4), data["mask_elements"])
	assert.Equal(t, float64(3), data["set_bits"])

	kinds, ok := data["kinds"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), kinds["float64"])
	assert.Equal(t, float64(1), kinds["int32"])
}

func TestHandleFileChunksPaging(t *testing.T) {
	srv, dataDir := testServer(t, "")
	chunks := make([]codec.Chunk, 10)
	for i := range chunks {
		chunks[i] = codec.Chunk{Value: codec.Uint8(uint8(i))}
	}
	seedFile(t, dataDir, "paged.qcsr", chunks)

	rec, resp := doRequest(t, srv, "/v1/files/paged.qcsr/chunks?offset=4&limit=3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	page := data["chunks"].([]interface{})
	require.Len(t, page, 3)
	first := page[0].(map[string]interface{})
	assert.Equal(t, float64(4), first["index"])
	assert.Equal(t, float64(4), first["value"])
}

func TestHandleFileChunksComplexValue(t *testing.T) {
	srv, dataDir := testServer(t, "")
	seedFile(t, dataDir, "cplx.qcsr", []codec.Chunk{
		{Value: codec.Complex128(complex(1, -2))},
	})

	rec, resp := doRequest(t, srv, "/v1/files/cplx.qcsr/chunks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	page := data["chunks"].([]interface{})
	require.Len(t, page, 1)
	value := page[0].(map[string]interface{})["value"].(map[string]interface{})
	assert.Equal(t, float64(1), value["real"])
	assert.Equal(t, float64(-2), value["imag"])
}

func TestHandleFileNotFound(t *testing.T) {
	srv, _ := testServer(t, "")
	rec, resp := doRequest(t, srv, "/v1/files/missing.qcsr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestHandleCorruptFile(t *testing.T) {
	srv, dataDir := testServer(t, "")
	seedFile(t, dataDir, "ok.qcsr", []codec.Chunk{{Value: codec.Bool(true)}})

	// Chop the value byte off the only chunk.
	path := filepath.Join(dataDir, "ok.qcsr")
	raw := readFile(t, path)
	writeFile(t, path, raw[:len(raw)-1])

	rec, resp := doRequest(t, srv, "/v1/files/ok.qcsr", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, resp.Success)
}

func TestAPIKeyRequired(t *testing.T) {
	srv, dataDir := testServer(t, "topsecret")
	seedFile(t, dataDir, "a.qcsr", nil)

	rec, resp := doRequest(t, srv, "/v1/files", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)

	rec, resp = doRequest(t, srv, "/v1/files", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, resp = doRequest(t, srv, "/v1/files", "topsecret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	// Health and metrics stay open.
	rec, _ = doRequest(t, srv, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
