package ivfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/ivtree"
	"gopkg.in/yaml.v3"
)

// Interval is the interval type of interval files: float64 values with a
// string label.
type Interval = ivtree.Interval[float64, string]

var (
	// ErrNoIntervals signals a document without any interval entries.
	ErrNoIntervals = errors.New("ivfile: no intervals")
	// ErrMalformedEntry signals an entry which is neither a pair nor a mapping.
	ErrMalformedEntry = errors.New("ivfile: malformed interval entry")
)

type document struct {
	Intervals []entry `yaml:"intervals"`
}

// entry is one interval in a document. It decodes from either a sequence of
// two numbers or a mapping.
type entry struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
	Label string  `yaml:"label,omitempty"`
}

func (e *entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: line %d: expected 2 values, have %d",
				ErrMalformedEntry, value.Line, len(pair))
		}
		e.Left, e.Right = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain entry // avoid recursion into UnmarshalYAML
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*e = entry(p)
		return nil
	}
	return fmt.Errorf("%w: line %d", ErrMalformedEntry, value.Line)
}

// Load reads an interval file.
//
// Intervals are returned in file order. Load does not check the intervals
// for validity; ivtree.Build will reject intervals with left > right.
func Load(name string) ([]Interval, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ivs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Debugf("ivfile: loaded %d intervals from %s", len(ivs), name)
	return ivs, nil
}

// Parse reads an interval document from r.
func Parse(r io.Reader) ([]Interval, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoIntervals
		}
		return nil, err
	}
	if len(doc.Intervals) == 0 {
		return nil, ErrNoIntervals
	}
	ivs := make([]Interval, len(doc.Intervals))
	for i, e := range doc.Intervals {
		ivs[i] = Interval{Left: e.Left, Right: e.Right, Value: e.Label}
	}
	return ivs, nil
}

// Write outputs intervals as an interval document, using the mapping form
// for every entry.
func Write(w io.Writer, intervals []Interval) error {
	doc := document{Intervals: make([]entry, len(intervals))}
	for i, iv := range intervals {
		doc.Intervals[i] = entry{Left: iv.Left, Right: iv.Right, Label: iv.Value}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes intervals to file name, replacing any existing file.
func Save(name string, intervals []Interval) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, intervals); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	tracer().Debugf("ivfile: saved %d intervals to %s", len(intervals), name)
	return f.Close()
}
