package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/fabricmock/pkg/adapters/memory"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSession(t *testing.T, file string) (*Session, error) {
	t.Helper()
	return Open(Options{
		ConfigPath:   filepath.Join(t.TempDir(), "missing.yaml"),
		ScenarioPath: filepath.Join("testdata", file),
		LogOutput:    io.Discard,
	})
}

func TestOpen_RunsScenario(t *testing.T) {
	s, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)

	assert.Equal(t, "list", s.Scenario.Name)
	assert.Equal(t, 9, s.Report.Steps)
	assert.Equal(t, 1, s.Report.Assertions)
	assert.Equal(t, []domain.RootTag{3}, s.Manager.Roots())
	assert.Equal(t, "8080", s.Config.Serve.Port)
}

func TestOpen_FailingScenarioKeepsSession(t *testing.T) {
	s, err := openTestSession(t, "broken.yaml")
	require.Error(t, err)
	require.NotNil(t, s)

	var stepErr *scenario.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, 4, stepErr.Index)
	assert.Equal(t, []domain.RootTag{3}, s.Manager.Roots())
}

func TestOpen_InvalidLogLevel(t *testing.T) {
	_, err := Open(Options{
		ConfigPath:   filepath.Join(t.TempDir(), "missing.yaml"),
		ScenarioPath: filepath.Join("testdata", "list.yaml"),
		LogLevel:     "loud",
		LogOutput:    io.Discard,
	})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestOpen_DebugLogsCalls(t *testing.T) {
	var logs bytes.Buffer
	_, err := Open(Options{
		ConfigPath:   filepath.Join(t.TempDir(), "missing.yaml"),
		ScenarioPath: filepath.Join("testdata", "list.yaml"),
		LogLevel:     "debug",
		LogOutput:    &logs,
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "op=completeRoot")
}

func TestWriteTrees(t *testing.T) {
	s, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)
	snaps, err := s.Snapshots()
	require.NoError(t, err)

	var md bytes.Buffer
	require.NoError(t, WriteTrees(&md, snaps, FormatMarkdown))
	assert.Contains(t, md.String(), "# Root 3")
	assert.Contains(t, md.String(), "  - **Text** `#12` (second) `{text=two}`")

	var mermaid bytes.Buffer
	require.NoError(t, WriteTrees(&mermaid, snaps, FormatMermaid))
	assert.True(t, strings.HasPrefix(mermaid.String(), "graph TD"))

	var js bytes.Buffer
	require.NoError(t, WriteTrees(&js, snaps, FormatJSON))
	assert.Contains(t, js.String(), `"view_name": "ScrollView"`)

	assert.ErrorContains(t, WriteTrees(io.Discard, snaps, "svg"), "unknown format")
}

func TestSaveAndRestoreSnapshots(t *testing.T) {
	ctx := context.Background()
	s, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)

	store := memory.NewStore()
	n, err := s.SaveSnapshots(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	fresh, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)
	fresh.Manager.Reset()

	n, err = fresh.RestoreSnapshots(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	root := fresh.Manager.RootNode(3)
	require.NotNil(t, root)
	assert.Equal(t, []any{"list"}, fresh.Manager.GetChildNodes(root))
}

func TestHandler_ServesMetricsAndRoots(t *testing.T) {
	s, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)
	h := s.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roots", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[3]`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fabricmock_calls_total{op="createNode"} 3`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	s, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Serve(ctx, "127.0.0.1:0", io.Discard))
}

func TestPrintReport(t *testing.T) {
	s, err := openTestSession(t, "list.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintReport(&buf, s.Report, nil)
	assert.Contains(t, buf.String(), ">>> PASS list")
	assert.Contains(t, buf.String(), "assertions: 1")

	buf.Reset()
	PrintReport(&buf, s.Report, errors.New("boom"))
	assert.Contains(t, buf.String(), ">>> FAIL list after 9 steps: boom")
}
