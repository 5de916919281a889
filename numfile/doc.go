/*
Package numfile loads numeric vectors from text files.

A number file holds decimal numbers separated by white space, line breaks,
commas or semicolons. A ‘#’ starts a comment which extends to the end of the
line:

	# daily minimum temperatures
	3.5 2.0 -1.25
	0, 4, 7

Load reads a file synchronously. A Loader reads it in the background and
broadcasts intermediate versions of the vector to subscribers while loading.
As vectors are persistent, every published version stays valid and may be
used concurrently to the ongoing load.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package numfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbvec'
func tracer() tracing.Trace {
	return tracing.Select("rbvec")
}
