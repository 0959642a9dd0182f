package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmapper/config"
	"github.com/katalvlaran/lvmapper/export"
	"github.com/katalvlaran/lvmapper/pointcloud"
)

func newTestServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	base := config.Default()
	base.Cluster.Kind = "trivial"
	base.Cover.Intervals = 2
	srv := httptest.NewServer(NewRouter(base, zap.New(core)).Setup())
	t.Cleanup(srv.Close)

	return srv, logs
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/v1/graph", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestHealthz(t *testing.T) {
	srv, logs := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, logs.FilterMessage("HTTP Request").All())
}

func TestBuildGraph(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := post(t, srv.URL, `{
		"points": [[0.0], [0.1], [0.4], [0.6], [0.9], [1.0]],
		"labels": ["a", "a", "a", "b", "b", "b"],
		"config": {"cover": {"intervals": 2, "overlap": 0.4}}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc export.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Links, 1)
	assert.EqualValues(t, 2, doc.Links[0].Weight)
	assert.Equal(t, "a", doc.Nodes[0].Label)
	assert.Equal(t, "trivial", doc.Meta.Config["clusterer"])
}

func TestBuildGraph_OverrideDoesNotLeak(t *testing.T) {
	srv, _ := newTestServer(t)
	body := `{"points": [[0], [1]], "config": {"cover": {"per_dim": [3]}}, "members": false}`
	resp := post(t, srv.URL, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc export.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Nil(t, doc.Nodes[0].Members)

	resp = post(t, srv.URL, `{"points": [[0], [1]]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc.Meta.Config["cover"], "n=2,")
}

func TestBuildGraph_BadRequests(t *testing.T) {
	srv, _ := newTestServer(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"points": [`, "decode request"},
		{"unknown field", `{"pts": [[1]]}`, "decode request"},
		{"empty cloud", `{"points": []}`, "no points"},
		{"ragged", `{"points": [[1, 2], [3]]}`, "same dimension"},
		{"bad overlap", `{"points": [[1]], "config": {"cover": {"overlap": 1}}}`, "cover.overlap"},
		{"projection index", `{"points": [[1]], "config": {"filter": {"kind": "projection", "indices": [4]}}}`, "projection"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var e ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.Contains(t, e.Error, tt.want)
		})
	}
}

func TestBuildGraph_HintOnDecodeError(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := post(t, srv.URL, `not json`)
	var e ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Contains(t, e.Hint, `"points"`)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(config.ErrInvalid))
	assert.Equal(t, http.StatusBadRequest, statusFor(pointcloud.ErrNonFinite))
	assert.Equal(t, http.StatusBadRequest, statusFor(pointcloud.ErrRagged))
	assert.Equal(t, http.StatusInternalServerError, statusFor(bytes.ErrTooLarge))
}
