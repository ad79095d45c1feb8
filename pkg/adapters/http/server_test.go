package http_test

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammophone/domos/internal/logging"
	"github.com/grammophone/domos/internal/runtime"
	"github.com/grammophone/domos/internal/testutils"
	"github.com/grammophone/domos/pkg/adapters/http"
	"github.com/grammophone/domos/pkg/adapters/memory"
	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/registry"
	"github.com/grammophone/domos/pkg/schema"
	"github.com/grammophone/domos/pkg/workflow"
)

type fixture struct {
	handler stdhttp.Handler
	object  *testutils.Object
}

func newFixture(t *testing.T, opts ...runtime.EngineOption) *fixture {
	t.Helper()

	graph, err := workflow.NewGraph("PurchaseOrder")
	require.NoError(t, err)
	pathCfg := workflow.NewPathConfig()
	require.NoError(t, pathCfg.SetPreActions([]string{"checkComment"}))
	require.NoError(t, graph.AddPath(
		domain.StatePath{Name: "Submit", From: "Draft", To: "Submitted"}, pathCfg))
	cfg := workflow.NewConfig()
	require.NoError(t, cfg.AddGraph(graph))

	reg := registry.NewRegistry()
	var log []string
	reg.Register("checkComment", testutils.RecordingAction("checkComment", &log,
		schema.MustParameter("approverComment", "Approver comment",
			"Message forwarded to the approver.", schema.String(), schema.Required())))

	obj := testutils.NewObject("po-1", "Draft")
	engine := runtime.NewEngine(cfg, reg, memory.NewStore(), opts...)
	handler := http.NewHandler(engine, testutils.ObjectMap{"po-1": obj}, logging.NewNop())
	return &fixture{handler: handler, object: obj}
}

func execute(t *testing.T, f *fixture, objectID string, args map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"object_id": objectID, "arguments": args})
	require.NoError(t, err)

	req := httptest.NewRequest(stdhttp.MethodPost,
		"/graphs/PurchaseOrder/paths/Submit/executions", bytes.NewReader(payload))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

var actorHeaders = map[string]string{"X-Actor-Id": "u-1", "X-Actor-Name": "Ada"}

func TestExecutePath(t *testing.T) {
	f := newFixture(t)

	rec := execute(t, f, "po-1", map[string]any{"approverComment": "please review"}, actorHeaders)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	var tr domain.StateTransition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
	assert.Equal(t, "Submitted", tr.ToState)
	assert.Equal(t, "u-1", tr.ActorID)
	assert.Equal(t, "Submitted", f.object.State)
}

func TestExecutePathValidationFailure(t *testing.T) {
	f := newFixture(t)

	rec := execute(t, f, "po-1", map[string]any{}, actorHeaders)
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Violations map[string][]string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Violations, "approverComment")
}

func TestExecutePathAccessDenied(t *testing.T) {
	f := newFixture(t, runtime.WithAccessChecker(testutils.DenyAll()))

	rec := execute(t, f, "po-1", map[string]any{"approverComment": "x"}, actorHeaders)
	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
}

func TestExecutePathWrongState(t *testing.T) {
	f := newFixture(t)
	f.object.State = "Submitted"

	rec := execute(t, f, "po-1", map[string]any{"approverComment": "x"}, actorHeaders)
	assert.Equal(t, stdhttp.StatusConflict, rec.Code)
}

func TestExecutePathMissingActor(t *testing.T) {
	f := newFixture(t)

	rec := execute(t, f, "po-1", map[string]any{"approverComment": "x"}, nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestExecutePathUnknownObject(t *testing.T) {
	f := newFixture(t)

	rec := execute(t, f, "po-9", map[string]any{"approverComment": "x"}, actorHeaders)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestExecutePathBadRequests(t *testing.T) {
	f := newFixture(t)

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPost,
			"/graphs/PurchaseOrder/paths/Submit/executions", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	})

	t.Run("missing object id", func(t *testing.T) {
		rec := execute(t, f, "", map[string]any{}, actorHeaders)
		assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	})
}

func TestListTransitions(t *testing.T) {
	f := newFixture(t)

	rec := execute(t, f, "po-1", map[string]any{"approverComment": "please review"}, actorHeaders)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	req := httptest.NewRequest(stdhttp.MethodGet, "/objects/po-1/transitions", nil)
	list := httptest.NewRecorder()
	f.handler.ServeHTTP(list, req)
	require.Equal(t, stdhttp.StatusOK, list.Code)

	var history []*domain.StateTransition
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "po-1", history[0].ObjectID)
}
