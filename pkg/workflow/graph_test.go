package workflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammophone/domos/pkg/domain"
	"github.com/grammophone/domos/pkg/workflow"
)

func TestGraphAddPath(t *testing.T) {
	t.Run("sets graph ownership", func(t *testing.T) {
		g, err := workflow.NewGraph("PurchaseOrder")
		require.NoError(t, err)

		err = g.AddPath(domain.StatePath{Name: "Submit", From: "Draft", To: "Submitted"}, nil)
		require.NoError(t, err)

		p, ok := g.Path("Submit")
		require.True(t, ok)
		assert.Equal(t, "PurchaseOrder", p.GraphName)

		cfg, ok := g.PathConfig("Submit")
		require.True(t, ok)
		assert.Empty(t, cfg.PreActions())
		assert.Empty(t, cfg.PostActions())
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name string
			path domain.StatePath
		}{
			{"missing name", domain.StatePath{From: "a", To: "b"}},
			{"missing origin", domain.StatePath{Name: "p", To: "b"}},
			{"missing target", domain.StatePath{Name: "p", From: "a"}},
			{"foreign graph", domain.StatePath{GraphName: "Other", Name: "p", From: "a", To: "b"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				g, err := workflow.NewGraph("G")
				require.NoError(t, err)
				assert.Error(t, g.AddPath(tc.path, nil))
			})
		}
	})

	t.Run("duplicate path", func(t *testing.T) {
		g, err := workflow.NewGraph("G")
		require.NoError(t, err)
		require.NoError(t, g.AddPath(domain.StatePath{Name: "p", From: "a", To: "b"}, nil))
		assert.Error(t, g.AddPath(domain.StatePath{Name: "p", From: "b", To: "c"}, nil))
	})
}

func TestGraphName(t *testing.T) {
	_, err := workflow.NewGraph("")
	assert.Error(t, err)
}

func TestConfigResolve(t *testing.T) {
	cfg := workflow.NewConfig()
	g, err := workflow.NewGraph("PurchaseOrder")
	require.NoError(t, err)
	require.NoError(t, g.AddPath(domain.StatePath{Name: "Submit", From: "Draft", To: "Submitted"}, nil))
	require.NoError(t, cfg.AddGraph(g))

	t.Run("found", func(t *testing.T) {
		path, pc, err := cfg.Resolve("PurchaseOrder", "Submit")
		require.NoError(t, err)
		assert.Equal(t, "Draft", path.From)
		assert.NotNil(t, pc)
	})

	t.Run("missing graph", func(t *testing.T) {
		_, _, err := cfg.Resolve("Invoice", "Submit")
		var ce *domain.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "Invoice", ce.Graph)
	})

	t.Run("missing path", func(t *testing.T) {
		_, _, err := cfg.Resolve("PurchaseOrder", "Approve")
		var ce *domain.ConfigError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "Approve", ce.Path)
	})
}

func TestConfigAddGraph(t *testing.T) {
	cfg := workflow.NewConfig()
	assert.Error(t, cfg.AddGraph(nil))

	g, err := workflow.NewGraph("G")
	require.NoError(t, err)
	require.NoError(t, cfg.AddGraph(g))

	dup, err := workflow.NewGraph("G")
	require.NoError(t, err)
	assert.Error(t, cfg.AddGraph(dup))
}

func TestPathConfigCopies(t *testing.T) {
	pc := workflow.NewPathConfig()
	require.NoError(t, pc.SetPreActions([]string{"a", "b"}))
	require.NoError(t, pc.SetPostActions([]string{"c"}))

	assert.Error(t, pc.SetPreActions(nil))
	assert.Error(t, pc.SetPostActions(nil))

	pre := pc.PreActions()
	pre[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, pc.PreActions())
	assert.Equal(t, []string{"c"}, pc.PostActions())
}
