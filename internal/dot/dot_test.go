package dot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/db47h/sketchnet"
	"github.com/db47h/sketchnet/internal/dot"
	"github.com/db47h/sketchnet/sketchtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func netlist(t *testing.T) *sketchnet.Netlist {
	c, err := sketchnet.NewParser(nil, nil).Parse(sketchtest.AndGate().Graph())
	require.NoError(t, err)
	return c.Netlist()
}

func TestToDOT(t *testing.T) {
	s := dot.ToDOT(netlist(t))
	assert.True(t, strings.HasPrefix(s, "digraph circuit {\n"))
	assert.Contains(t, s, `"A" [label="A", shape=ellipse];`)
	assert.Contains(t, s, `"g" [label="g\nAND"];`)
	assert.Contains(t, s, `"A" -> "g" [label="0:0"];`)
	assert.Contains(t, s, `"B" -> "g" [label="0:1"];`)
	assert.Contains(t, s, `"g" -> "Y" [label="0:0"];`)
}

func TestRenderSVG(t *testing.T) {
	svg, err := dot.RenderSVG(context.Background(), dot.ToDOT(netlist(t)))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
