package cli

import (
	"bytes"
	"testing"

	"github.com/db47h/sketchnet"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrappedErrors() error {
	errs := sketchnet.ParseErrors{{
		Kind:      sketchnet.ConnectivityError,
		Code:      sketchnet.CodeMissingSource,
		ShapeName: "w",
		Message:   "wire is not driven by any gate or input",
	}}
	return errors.Wrap(errs, "stray.toml")
}

func TestPrintText_wrappedErrors(t *testing.T) {
	var buf bytes.Buffer
	printText(&buf, result{File: "stray.toml", Err: wrappedErrors()})
	assert.Contains(t, buf.String(), "1 errors")
	assert.Contains(t, buf.String(), "[connectivity MISSING_SOURCE]")
}

func TestJSONResults_wrappedErrors(t *testing.T) {
	rs := jsonResults([]result{
		{File: "stray.toml", Err: wrappedErrors()},
		{File: "missing.toml", Err: errors.New("open missing.toml: no such file")},
	})
	require.Len(t, rs, 2)
	assert.Equal(t, []jsonError{{
		Kind:    "connectivity",
		Code:    sketchnet.CodeMissingSource,
		Shape:   "w",
		Message: "wire is not driven by any gate or input",
	}}, rs[0].Errors)
	assert.Equal(t, []jsonError{{Message: "open missing.toml: no such file"}}, rs[1].Errors)
}
