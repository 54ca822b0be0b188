package observability_test

import (
	"testing"

	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := observability.NewRecorder()
	hooks := r.Hooks()

	hooks.Fire(&domain.Call{Op: domain.OpCreateNode, Args: []any{1}})
	hooks.Fire(&domain.Call{Op: domain.OpAppendChild})
	hooks.Fire(&domain.Call{Op: domain.OpCreateNode, Args: []any{2}})

	assert.Equal(t, 3, r.Count(""))
	assert.Equal(t, 2, r.Count(domain.OpCreateNode))
	assert.Equal(t, 0, r.Count(domain.OpMeasure))
	assert.Empty(t, r.Calls(domain.OpMeasure))

	last, ok := r.Last(domain.OpCreateNode)
	require.True(t, ok)
	assert.Equal(t, []any{2}, last.Args)

	r.Clear()
	assert.Equal(t, 0, r.Count(""))
	_, ok = r.Last("")
	assert.False(t, ok)
}
