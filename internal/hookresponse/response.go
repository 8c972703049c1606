// Package hookresponse builds and writes the hook wire responses.
//
// The wire format has exactly three success shapes, mutually exclusive:
//
//	{}                                      pass-through
//	{"block":true,"reason":"..."}           block signal
//	{"args":{...}}                          argument mutation
//
// and one failure shape, written to stderr only:
//
//	{"error":"..."}
package hookresponse

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookgate/internal/interceptor"
	"github.com/smykla-skalski/hookgate/pkg/hook"
)

// Response is the success decision object written to stdout. The zero value
// renders as the pass-through shape {}.
type Response struct {
	// Block signals the caller must not execute the invocation.
	Block bool `json:"block,omitempty"`

	// Reason explains a block. Only set alongside Block.
	Reason string `json:"reason,omitempty"`

	// Args is the full replacement argument mapping of a mutation.
	Args hook.Args `json:"args,omitempty"`
}

// FromDecision converts a dispatcher decision into its wire shape.
func FromDecision(d *interceptor.Decision) *Response {
	switch {
	case d == nil:
		return &Response{}
	case d.Kind == interceptor.KindBlock:
		return &Response{
			Block:  true,
			Reason: d.Reason,
		}
	case d.Kind == interceptor.KindMutate:
		return &Response{
			Args: d.Args,
		}
	default:
		return &Response{}
	}
}

// Write encodes the response as a single newline-terminated JSON line.
func Write(w io.Writer, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "marshal hook response")
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write hook response")
	}

	return nil
}

// ErrorReport is the failure object written to stderr. A failure never
// writes anything to stdout.
type ErrorReport struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
}

// WriteError encodes the failure report for the given error.
func WriteError(w io.Writer, failure error) error {
	report := ErrorReport{Error: failure.Error()}

	data, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal error report")
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write error report")
	}

	return nil
}
