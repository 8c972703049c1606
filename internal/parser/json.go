// Package parser provides JSON input parsing for hook invocations.
package parser

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookgate/pkg/hook"
)

var (
	// ErrEmptyInput is returned when the input is empty. Callers treat it
	// as "nothing to process", not a failure.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidJSON is returned when the input is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidArgs is returned when args is present but not an object.
	ErrInvalidArgs = errors.New("args is not an object")

	// ErrInvalidCommand is returned when args.command is present but not a
	// string.
	ErrInvalidCommand = errors.New("command is not a string")
)

// argsKey and toolKey are the top-level input fields the hook inspects.
const (
	toolKey = "tool"
	argsKey = "args"
)

// JSONParser parses a hook invocation from a reader.
type JSONParser struct {
	reader io.Reader
}

// NewJSONParser creates a JSONParser reading from the given reader.
func NewJSONParser(reader io.Reader) *JSONParser {
	return &JSONParser{
		reader: reader,
	}
}

// Parse reads the full input and builds a typed request. Absent fields are
// defaulted here: missing tool means an empty name, missing args means an
// empty map, missing command means empty text. A present-but-wrongly-typed
// args or command is a parse failure.
func (p *JSONParser) Parse() (*hook.Request, error) {
	jsonBytes, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	if len(jsonBytes) == 0 {
		return nil, ErrEmptyInput
	}

	// Unmarshal into a nil map: JSON null leaves it nil, any object makes
	// it non-nil, and every non-object value errors out.
	var raw map[string]json.RawMessage

	if unmarshalErr := json.Unmarshal(jsonBytes, &raw); unmarshalErr != nil {
		return nil, errors.CombineErrors(ErrInvalidJSON, unmarshalErr)
	}

	if raw == nil {
		return nil, errors.Wrap(ErrInvalidJSON, "top-level value is not an object")
	}

	req := &hook.Request{
		Args:    hook.Args{},
		RawJSON: string(jsonBytes),
	}

	// A non-string tool name matches no rule, so it decays to empty rather
	// than failing.
	if rawTool, ok := raw[toolKey]; ok {
		var tool string
		if unmarshalErr := json.Unmarshal(rawTool, &tool); unmarshalErr == nil {
			req.Tool = tool
		}
	}

	if rawArgs, ok := raw[argsKey]; ok {
		var args map[string]json.RawMessage

		if unmarshalErr := json.Unmarshal(rawArgs, &args); unmarshalErr != nil {
			return nil, errors.CombineErrors(ErrInvalidArgs, unmarshalErr)
		}

		if args == nil {
			return nil, ErrInvalidArgs
		}

		req.Args = args
	}

	if rawCommand, ok := req.Args[hook.CommandKey]; ok {
		var command string

		if unmarshalErr := json.Unmarshal(rawCommand, &command); unmarshalErr != nil {
			return nil, errors.CombineErrors(ErrInvalidCommand, unmarshalErr)
		}

		req.Command = command
	}

	return req, nil
}
