package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshift-labs/docshift/pkg/parser"
)

func TestStubObjectKeys(t *testing.T) {
	obj := newStubObject()
	require.Len(t, obj.Props, 3)
	assert.Equal(t, "Container", obj.Props[0].Key)
	assert.Equal(t, "GridBlock", obj.Props[1].Key)
	assert.Equal(t, "MarkdownBlock", obj.Props[2].Key)
}

func TestStubNodesAreDistinct(t *testing.T) {
	obj := newStubObject()

	seen := map[parser.Expr]bool{}
	for _, prop := range obj.Props {
		fn, ok := prop.Value.(*parser.ArrowFn)
		require.True(t, ok)
		assert.False(t, seen[prop.Value], "stub functions must not be shared")
		assert.False(t, seen[fn.Body], "stub bodies must not be shared")
		seen[prop.Value] = true
		seen[fn.Body] = true
	}

	other := newStubObject()
	assert.NotSame(t, obj.Props[0].Value, other.Props[0].Value)
}
