package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/rbvec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var fragment = `<table>
<tr><th>Station</th><th>Min °C</th></tr>
<tr><td>Kahlenberg</td><td>3.5</td></tr>
<tr><td>Hohe Warte</td><td>-1.25</td></tr>
<tr><td>Innere Stadt</td><td>4</td></tr>
</table>
<script>var x = 42;</script>
<p>Readings 7 and <b>0.5</b> are estimates.</p>`

func TestValuesFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	requireT := require.New(t)
	//
	v, err := ValuesFromHTML(strings.NewReader(fragment))
	requireT.NoError(err)
	requireT.Equal([]float64{3.5, -1.25, 4, 7, 0.5}, v.Values())
	m, err := v.MinSlice(2, 4)
	requireT.NoError(err)
	requireT.Equal(0.5, m)
}

func TestVectorFromNode(t *testing.T) {
	requireT := require.New(t)

	nodes, err := html.ParseFragment(strings.NewReader(`<ul><li>9</li><li>2</li><li>x</li></ul>`), nil)
	requireT.NoError(err)
	requireT.NotEmpty(nodes)
	v, err := VectorFromNode(nodes[0])
	requireT.NoError(err)
	requireT.Equal("[9 2]", v.String())
	//
	_, err = VectorFromNode(nil)
	requireT.ErrorIs(err, rbvec.ErrIllegalArguments)
}

func TestValuesFromHTMLWithoutNumbers(t *testing.T) {
	v, err := ValuesFromHTML(strings.NewReader(`<p>nothing to see</p>`))
	require.NoError(t, err)
	require.True(t, v.IsVoid())
}
