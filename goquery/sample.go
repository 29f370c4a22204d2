package goquery

import (
	"strings"

	pcapi "github.com/williamsiker/pc-api"
)

// sampleState is the state of the sample pairing machine.
type sampleState int

const (
	// stateIdle means no sample case is being accumulated.
	stateIdle sampleState = iota
	// stateOpen means an input block has opened a partial case.
	stateOpen
)

// sampleBuilder accumulates sample input/output/explanation blocks
// into ordered sample cases. An input block opens a case (flushing any
// previously open one); output and explanation blocks fill the open
// case and are dropped when no case is open.
type sampleBuilder struct {
	state   sampleState
	current pcapi.SampleCase
	cases   []pcapi.SampleCase
}

// OpenInput starts a new partial case with the given input, flushing
// the currently open case first if any.
func (b *sampleBuilder) OpenInput(input string) {
	if b.state == stateOpen {
		b.flush()
	}
	b.current = pcapi.SampleCase{Input: input}
	b.state = stateOpen
}

// SetOutput fills the output of the open case.
// Returns false if no case is open (malformed document).
func (b *sampleBuilder) SetOutput(output string) bool {
	if b.state != stateOpen {
		return false
	}
	b.current.Output = output
	return true
}

// SetExplanation fills the explanation of the open case.
// Returns false if no case is open.
func (b *sampleBuilder) SetExplanation(explanation string) bool {
	if b.state != stateOpen {
		return false
	}
	b.current.Explanation = explanation
	return true
}

func (b *sampleBuilder) flush() {
	b.cases = append(b.cases, b.current)
	b.current = pcapi.SampleCase{}
	b.state = stateIdle
}

// Cases flushes any open case and returns the accumulated cases in
// flush order, dropping cases whose input and output are both empty
// after trimming.
func (b *sampleBuilder) Cases() []pcapi.SampleCase {
	if b.state == stateOpen {
		b.flush()
	}

	var cases []pcapi.SampleCase
	for _, c := range b.cases {
		input := strings.TrimSpace(c.Input)
		output := strings.TrimSpace(c.Output)
		if input == "" && output == "" {
			continue
		}
		cases = append(cases, pcapi.SampleCase{
			Input:       input,
			Output:      output,
			Explanation: strings.TrimSpace(c.Explanation),
		})
	}
	return cases
}
