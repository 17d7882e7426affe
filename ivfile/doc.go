/*
Package ivfile reads and writes interval sets as YAML documents.

An interval file holds a single key 'intervals' with a list of entries.
Entries are either a pair of numbers or a mapping with keys 'left', 'right'
and an optional 'label':

	intervals:
	  - [0.0, 1.5]
	  - {left: 2, right: 3, label: "b"}

Labels become the payload of the intervals, ready to be handed to
ivtree.Build.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package ivfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ivtree'
func tracer() tracing.Trace {
	return tracing.Select("ivtree")
}
