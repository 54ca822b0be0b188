package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/fabricmock"
	httpAdapter "github.com/aretw0/fabricmock/pkg/adapters/http"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer commits A(1)[B(2)] under root 5.
func newServer(t *testing.T) (*fabricmock.Manager, http.Handler) {
	t.Helper()
	m := fabricmock.New()

	a, err := m.CreateNode(1, "View", 5, domain.Props{"flex": 1}, "A")
	require.NoError(t, err)
	b, err := m.CreateNode(2, "Text", 5, nil, "B")
	require.NoError(t, err)
	m.AppendChild(a, b)

	set := m.CreateChildSet(5)
	m.AppendChildToSet(set, a)
	m.CompleteRoot(5, set)

	return m, httpAdapter.NewHandler(m, nil)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListRoots(t *testing.T) {
	_, h := newServer(t)

	w := get(t, h, "/roots")
	require.Equal(t, http.StatusOK, w.Code)

	var roots []int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roots))
	assert.Equal(t, []int{5}, roots)
}

func TestGetRoot(t *testing.T) {
	_, h := newServer(t)

	w := get(t, h, "/roots/5")
	require.Equal(t, http.StatusOK, w.Code)

	var snap domain.TreeSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, domain.RootTag(5), snap.RootTag)
	require.Len(t, snap.Children, 1)
	assert.Equal(t, "View", snap.Children[0].ViewName)
	assert.Equal(t, 2, snap.Count())

	assert.Equal(t, http.StatusNotFound, get(t, h, "/roots/6").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/roots/abc").Code)
}

func TestGetRootMermaid(t *testing.T) {
	_, h := newServer(t)

	w := get(t, h, "/roots/5/mermaid?highlight=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "graph TD")
	assert.Contains(t, w.Body.String(), "n1 --> n2")
	assert.Contains(t, w.Body.String(), "class n2 selected;")

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/roots/5/mermaid?highlight=x").Code)
}

func TestParentAndChildren(t *testing.T) {
	_, h := newServer(t)

	var parent struct {
		Handle any `json:"handle"`
	}
	w := get(t, h, "/roots/5/nodes/2/parent")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parent))
	assert.Equal(t, "A", parent.Handle)

	var children struct {
		Handles []any `json:"handles"`
	}
	w = get(t, h, "/roots/5/nodes/1/children")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &children))
	assert.Equal(t, []any{"B"}, children.Handles)

	w = get(t, h, "/roots/5/nodes/99/children")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &children))
	assert.Empty(t, children.Handles)

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/roots/5/nodes/x/parent").Code)
}

func TestCallsAndReset(t *testing.T) {
	m, h := newServer(t)
	require.Error(t, m.Measure(nil, nil))

	var calls []httpAdapter.CallView
	w := get(t, h, "/calls?op=measure")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &calls))
	require.Len(t, calls, 1)
	assert.Equal(t, domain.OpMeasure, calls[0].Op)
	assert.NotEmpty(t, calls[0].Error)

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Empty(t, m.Roots())
	assert.Equal(t, http.StatusNotFound, get(t, h, "/roots/5").Code)
}

func TestHealthAndOpenAPI(t *testing.T) {
	_, h := newServer(t)

	var health httpAdapter.Health
	w := get(t, h, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, fabricmock.Version, health.Version)
	assert.Equal(t, "0.1.0", health.ApiVersion)

	w = get(t, h, "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fabricmock inspection API")

	swagger, err := httpAdapter.GetSwagger()
	require.NoError(t, err)
	for _, p := range []string{"/roots", "/roots/{root}", "/roots/{root}/mermaid", "/roots/{root}/nodes/{tag}/parent", "/roots/{root}/nodes/{tag}/children", "/calls", "/reset"} {
		assert.NotNil(t, swagger.Paths.Find(p), p)
	}
}

func TestGetRoot_NullHandles(t *testing.T) {
	m := fabricmock.New()
	a, err := m.CreateNode(1, "View", 3, nil, nil)
	require.NoError(t, err)
	set := m.CreateChildSet(3)
	m.AppendChildToSet(set, a)
	m.CompleteRoot(3, set)

	w := get(t, httpAdapter.NewHandler(m, nil), "/roots/3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"handle":null`)
	assert.NotContains(t, w.Body.String(), `"props"`)
}
