/*
Package html extracts numeric vectors from HTML.

Numbers are taken from the text content of a fragment, in document order.
This is handy for tables or lists scraped from a web page:

	v, err := html.ValuesFromHTML(strings.NewReader(`<td>4</td><td>2</td>`))
	m, _ := v.Min() // 2

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbvec'
func tracer() tracing.Trace {
	return tracing.Select("rbvec")
}
