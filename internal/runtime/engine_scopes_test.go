package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammophone/domos/internal/runtime"
	"github.com/grammophone/domos/internal/testutils"
	"github.com/grammophone/domos/pkg/adapters/memory"
	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/ports"
	"github.com/grammophone/domos/pkg/registry"
)

func TestEngine_ExecutePath_ElevatedAccessSkipsCheck(t *testing.T) {
	checks := 0
	counting := ports.AccessCheckerFunc(func(context.Context, domain.Identity, domain.StatePath, domain.StatefulObject) (bool, error) {
		checks++
		return false, nil
	})

	engine := runtime.NewEngine(newSubmitConfig(t, nil, nil), registry.NewRegistry(), memory.NewStore(),
		runtime.WithAccessChecker(counting))

	sess := newSession(t)
	scope := sess.EnterElevatedAccess()
	defer scope.Close()

	tr, err := engine.ExecutePath(context.Background(), sess, "PurchaseOrder", "Submit",
		testutils.NewObject("po-1", "Draft"), nil)
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Zero(t, checks, "access checker must not be consulted while elevated")
}

func TestEngine_ExecutePath_CheckResumesAfterElevationCloses(t *testing.T) {
	engine := runtime.NewEngine(newSubmitConfig(t, nil, nil), registry.NewRegistry(), memory.NewStore(),
		runtime.WithAccessChecker(testutils.DenyAll()))

	sess := newSession(t)
	scope := sess.EnterElevatedAccess()
	require.NoError(t, scope.Close())

	_, err := engine.ExecutePath(context.Background(), sess, "PurchaseOrder", "Submit",
		testutils.NewObject("po-1", "Draft"), nil)

	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)
}

func TestEngine_ExecutePath_ImpersonatedAttribution(t *testing.T) {
	engine := runtime.NewEngine(newSubmitConfig(t, nil, nil), registry.NewRegistry(), memory.NewStore())

	sess := newSession(t)
	scope, err := sess.Impersonate(domain.Identity{ID: "u-2", Name: "Grace"})
	require.NoError(t, err)

	tr, err := engine.ExecutePath(context.Background(), sess, "PurchaseOrder", "Submit",
		testutils.NewObject("po-1", "Draft"), nil)
	require.NoError(t, err)
	assert.Equal(t, "u-2", tr.ActorID, "transition must be attributed to the impersonated identity")

	require.NoError(t, scope.Close())

	tr2, err := engine.ExecutePath(context.Background(), sess, "PurchaseOrder", "Submit",
		testutils.NewObject("po-2", "Draft"), nil)
	require.NoError(t, err)
	assert.Equal(t, "u-1", tr2.ActorID, "attribution reverts to the session owner after close")
}

func TestEngine_ExecutePath_AccessCheckSeesImpersonatedIdentity(t *testing.T) {
	var checkedActor domain.Identity
	recorder := ports.AccessCheckerFunc(func(_ context.Context, actor domain.Identity, _ domain.StatePath, _ domain.StatefulObject) (bool, error) {
		checkedActor = actor
		return true, nil
	})

	engine := runtime.NewEngine(newSubmitConfig(t, nil, nil), registry.NewRegistry(), memory.NewStore(),
		runtime.WithAccessChecker(recorder))

	sess := newSession(t)
	scope, err := sess.Impersonate(domain.Identity{ID: "u-9"})
	require.NoError(t, err)
	defer scope.Close()

	_, err = engine.ExecutePath(context.Background(), sess, "PurchaseOrder", "Submit",
		testutils.NewObject("po-1", "Draft"), nil)
	require.NoError(t, err)
	assert.Equal(t, "u-9", checkedActor.ID)
}
