package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlayout/api"
	"github.com/katalvlaran/graphlayout/store"
)

func newTestServer() *api.Server {
	return api.NewServer(store.New(), nil, nil)
}

func TestSaveAndGetGraph(t *testing.T) {
	srv := newTestServer()
	handler := srv.Routes()

	body := `{"id":"g1","nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":"a","target":"b"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/graphs", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req2 := httptest.NewRequest(http.MethodGet, "/api/graphs/g1", nil)
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusOK, w2.Code)

	var resp api.GraphResponse
	require.NoError(t, json.NewDecoder(w2.Body).Decode(&resp))
	require.Len(t, resp.Nodes, 2)
	require.Len(t, resp.Edges, 1)
}

func TestGetUnknownGraphReturns404(t *testing.T) {
	srv := newTestServer()
	handler := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/graphs/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyLayoutEndToEnd(t *testing.T) {
	srv := newTestServer()
	handler := srv.Routes()

	saveBody := `{"id":"g1","nodes":[{"id":"a"},{"id":"b"}],"edges":[{"source":"a","target":"b"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/graphs", bytes.NewBufferString(saveBody))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	layoutBody := `{"graph_id":"g1","algorithm":"dagre"}`
	req2 := httptest.NewRequest(http.MethodPost, "/api/layout", bytes.NewBufferString(layoutBody))
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusOK, w2.Code)

	var resp api.GraphResponse
	require.NoError(t, json.NewDecoder(w2.Body).Decode(&resp))
	require.NotNil(t, resp.Nodes[0].X)
}

func TestUploadDOT(t *testing.T) {
	srv := newTestServer()
	handler := srv.Routes()

	payload := map[string]string{
		"id":           "g2",
		"file_type":    "dot",
		"file_content": "digraph G {\n a -> b;\n}",
	}
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewBuffer(b))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestListGraphs(t *testing.T) {
	srv := newTestServer()
	handler := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/graphs", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.GraphListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Empty(t, resp.GraphIDs)
}
