/*
Package ivtree implements a static interval tree over one-dimensional closed
intervals.

Interval Trees

An interval tree answers two kinds of questions about a fixed collection of
intervals [left,right]:

  - which intervals contain a point p (stabbing query), and
  - which intervals overlap a query interval Q (range-overlap query).

This package implements the centered variant. Every node of the tree receives
a set of intervals and computes a center value halfway between the smallest
left and the largest right endpoint of that set. Intervals lying completely
below the center are handed down to the left child, intervals lying completely
above it to the right child. The remaining intervals straddle (or touch) the
center and are kept at the node, once sorted ascending by left endpoint and once
sorted descending by right endpoint. The tree is balanced by the distribution
of the values, not by the number of intervals.

In addition to the nodes, the tree holds a flat index of all interval endpoints,
sorted by value. Range queries binary-search this index to find every interval
with at least one endpoint inside Q, and then stab the tree at Q's left
boundary to pick up intervals enclosing Q completely.

Trees are built once, from the complete interval set, and are immutable
afterwards:

	tree, err := ivtree.Build(intervals)
	...
	hits := tree.QueryPoint(4.5)
	overlaps, err := tree.QueryRange(2.0, 3.0)

	Operation     |   Cost
	--------------+--------------------
	Build         |   O(n log n)
	QueryPoint    |   O(log n + k)
	QueryRange    |   O(log n + k)

where k is the number of intervals reported. All queries are safe for
concurrent use by multiple goroutines.

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
package ivtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for code where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
