package domain_test

import (
	"strings"
	"testing"

	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	data := []struct {
		r    domain.Range
		n    int
		in   bool
		repr string
	}{
		{domain.Exactly(1), 1, true, "1"},
		{domain.Exactly(1), 2, false, "1"},
		{domain.AtLeast(2), 1, false, "[2, ∞)"},
		{domain.AtLeast(2), 100, true, "[2, ∞)"},
		{domain.Range{1, 3}, 3, true, "[1, 3]"},
		{domain.Range{1, 3}, 0, false, "[1, 3]"},
	}
	for _, d := range data {
		t.Run(d.repr, func(t *testing.T) {
			assert.Equal(t, d.in, d.r.Contains(d.n))
			assert.Equal(t, d.repr, d.r.String())
		})
	}
}

func TestDefault(t *testing.T) {
	tab := domain.Default()
	data := []struct {
		typ                          shape.Type
		gate, wire, text, bubble, sc bool
	}{
		{domain.And, true, false, false, false, false},
		{domain.Not, true, false, false, false, false},
		{domain.NotBubble, true, false, false, true, false},
		{domain.Subcircuit, true, false, false, false, true},
		{domain.Wire, false, true, false, false, false},
		{domain.Text, false, false, true, false, false},
		{"Squiggle", false, false, false, false, false},
	}
	for _, d := range data {
		t.Run(string(d.typ), func(t *testing.T) {
			assert.Equal(t, d.gate, tab.IsGate(d.typ))
			assert.Equal(t, d.wire, tab.IsWire(d.typ))
			assert.Equal(t, d.text, tab.IsText(d.typ))
			assert.Equal(t, d.bubble, tab.IsNotBubble(d.typ))
			assert.Equal(t, d.sc, tab.IsSubcircuit(d.typ))
		})
	}
	assert.Equal(t, domain.AtLeast(2), tab.Inputs(domain.Xor))
	assert.Equal(t, domain.Exactly(1), tab.Outputs(domain.Xor))
	assert.False(t, tab.Known("Squiggle"))
	assert.Equal(t, domain.And, tab.Kinds()[0].Type)
}

func TestTable_Add(t *testing.T) {
	tab := domain.Default()
	n := len(tab.Kinds())
	require.NoError(t, tab.Add(domain.Kind{Type: domain.And, Class: domain.ClassGate, Inputs: domain.Range{2, 4}, Outputs: domain.Exactly(1)}))
	assert.Len(t, tab.Kinds(), n)
	assert.Equal(t, domain.Range{2, 4}, tab.Inputs(domain.And))

	assert.Error(t, tab.Add(domain.Kind{Class: domain.ClassGate}))
	assert.Error(t, tab.Add(domain.Kind{Type: "X"}))
	assert.Error(t, tab.Add(domain.Kind{Type: "X", Class: domain.ClassGate, Inputs: domain.Range{3, 2}}))
}

func TestClass(t *testing.T) {
	for _, c := range []domain.Class{domain.ClassGate, domain.ClassWire, domain.ClassText, domain.ClassNotBubble, domain.ClassSubcircuit} {
		p, err := domain.ParseClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, p)
	}
	_, err := domain.ParseClass("unknown")
	assert.Error(t, err)
	assert.Equal(t, "Class(42)", domain.Class(42).String())
}

func TestSignature(t *testing.T) {
	s, err := domain.NewSignature("Add2", "a[2], b[2]", "s[2], c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a[0]", "a[1]", "b[0]", "b[1]"}, s.Inputs)
	assert.Equal(t, []string{"s[0]", "s[1]", "c"}, s.Outputs)

	_, err = domain.NewSignature("Bad", "a", "a")
	assert.EqualError(t, err, "subcircuit Bad: pin a is both input and output")
	_, err = domain.NewSignature("", "a", "b")
	assert.Error(t, err)
	assert.Panics(t, func() { domain.MustSignature("Dup", "a, a", "") })

	lib := make(domain.Library)
	require.NoError(t, lib.Add(s))
	assert.Error(t, lib.Add(s))
	got, ok := lib.Lookup("Add2")
	assert.True(t, ok)
	assert.Same(t, s, got)
}

const domainFile = `
[[gate]]
name = "MUX"
class = "gate"
inputs = [3]
outputs = [1]

[[gate]]
name = "AND"
class = "gate"
inputs = [2, 3]
outputs = [1]

[[subcircuit]]
name = "HalfAdder"
inputs = "a, b"
outputs = "sum, carry"

[[subcircuit]]
name = "Tie"
outputs = "one"
`

func TestLoad(t *testing.T) {
	tab, lib, err := domain.Load(strings.NewReader(domainFile))
	require.NoError(t, err)
	assert.True(t, tab.IsGate("MUX"))
	assert.Equal(t, domain.Exactly(3), tab.Inputs("MUX"))
	assert.Equal(t, domain.Range{2, 3}, tab.Inputs(domain.And))
	assert.True(t, tab.IsWire(domain.Wire))
	assert.Equal(t, []string{"HalfAdder", "Tie"}, lib.Names())
	assert.Empty(t, lib["Tie"].Inputs)
}

func TestLoad_builtin(t *testing.T) {
	src := "builtin = false\n[[gate]]\nname='G'\nclass='gate'\ninputs=[1, -1]\noutputs=[1]\n"
	tab, lib, err := domain.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, lib)
	assert.False(t, tab.Known(domain.Wire))
	assert.Equal(t, domain.AtLeast(1), tab.Inputs("G"))
}

func TestLoad_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
		err  string
	}{
		{"class", "[[gate]]\nname='G'\nclass='blob'\n", `gate G: unknown shape class "blob"`},
		{"range", "[[gate]]\nname='G'\nclass='gate'\ninputs=[1,2,3]\n", "gate G inputs: expected at most 2 values, got 3"},
		{"bad_range", "[[gate]]\nname='G'\nclass='gate'\ninputs=[3,2]\n", "G: invalid range 3..2"},
		{"dup", "[[subcircuit]]\nname='S'\n[[subcircuit]]\nname='S'\n", "subcircuit S already defined"},
		{"key", "colour = 1\n", `unknown key "colour"`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, _, err := domain.Load(strings.NewReader(d.src))
			require.Error(t, err)
			assert.Equal(t, d.err, err.Error())
		})
	}
}
