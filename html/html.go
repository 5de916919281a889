package html

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/rbvec"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// VectorFromNode creates a vector from the numbers contained in the textual
// content of an HTML element and all its descendents. Numbers are appended in
// document order. Words of text which do not parse as a number are skipped,
// as is the content of script and style elements. Words spelling out NaN or
// infinity are not considered numbers.
//
// A typical source is a table column or a list:
//
//	<ul><li>3</li><li>2.5</li><li>-1e3</li></ul>
func VectorFromNode(n *html.Node) (rbvec.Vector[float64], error) {
	if n == nil {
		return rbvec.Vector[float64]{}, rbvec.ErrIllegalArguments
	}
	b := rbvec.NewBuilder[float64]()
	if err := collectNumbers(n, b); err != nil {
		return rbvec.Vector[float64]{}, err
	}
	return b.Vector(), nil
}

// ValuesFromHTML creates a vector from the numbers found in an HTML fragment.
// It does no interpretation of layout and styling; see VectorFromNode.
func ValuesFromHTML(input io.Reader) (rbvec.Vector[float64], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return rbvec.Vector[float64]{}, err
	}
	b := rbvec.NewBuilder[float64]()
	for _, n := range nodes {
		if err := collectNumbers(n, b); err != nil {
			return rbvec.Vector[float64]{}, err
		}
	}
	v := b.Vector()
	tracer().Debugf("found %d numbers in HTML fragment", v.Len())
	return v, nil
}

func collectNumbers(n *html.Node, b *rbvec.Builder[float64]) error {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return nil
		}
	case html.TextNode:
		for _, word := range strings.Fields(n.Data) {
			x, err := strconv.ParseFloat(word, 64)
			if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			if err = b.Append(x); err != nil {
				return err
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectNumbers(c, b); err != nil {
			return err
		}
	}
	return nil
}
