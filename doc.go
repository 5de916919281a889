/*
Package rbvec offers persistent vectors of numbers with fast range-minimum queries.

Vectors

A Vector is an immutable, indexed sequence of numbers. Changing a vector, be it
by replacing an element or by appending one, leaves the original untouched and
returns a new vector. Both share all of their storage except for a single path
of tree nodes, so keeping many versions around is cheap.

Vectors are organized as radix-balanced trees: the path to an element is the
digit sequence of its index in base 2^B, where B is the number of branching
bits chosen at construction time. Every tree node caches the minimum of the
elements below it. This makes the question "what is the smallest element
between positions i and j?" answerable by descending at most two paths,
regardless of the distance between i and j.

	Operation     |   Vector        |  Slice
	--------------+-----------------+--------
	Get           |   O(log n)      |   O(1)
	Updated       |   O(log n)      |   O(n) (copy)
	Appended      |   O(log n)      |   O(n) (copy)
	MinSlice      |   O(log n)      |   O(j-i)

The zero value of Vector is a valid, empty vector.

Radix-balanced trees were popularized by Clojure's persistent vectors and later
refined by Bagwell and Rompf ("RRB-Trees: Efficient Immutable Vectors"). Vectors
in this package use the plain, strictly balanced variant without relaxed nodes
or tail buffers, augmented by subtree minima.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbvec

import (
	"github.com/npillmayer/rbvec/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// VectorError is an error type for the rbvec module
type VectorError string

func (e VectorError) Error() string {
	return string(e)
}

// ErrVectorCompleted signals that a vector builder has already completed a vector and
// it's illegal to further add values.
const ErrVectorCompleted = VectorError("forbidden to add values; vector has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = VectorError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a position is negative or not
// less than the length of a vector.
var ErrIndexOutOfBounds = rbtree.ErrIndexOutOfBounds

// ErrInvalidRange is flagged for ranges with a lower bound greater than their upper bound.
var ErrInvalidRange = rbtree.ErrInvalidRange

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
