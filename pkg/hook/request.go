// Package hook provides core types for tool invocation hook requests.
package hook

import "encoding/json"

// CommandKey is the args key carrying the shell command text.
const CommandKey = "command"

// Args holds tool arguments keyed by name. Values stay as raw JSON so keys
// the hook does not interpret survive the mutation path byte-for-byte.
type Args map[string]json.RawMessage

// Clone returns a shallow copy of the args.
func (a Args) Clone() Args {
	cloned := make(Args, len(a))
	for k, v := range a {
		cloned[k] = v
	}

	return cloned
}

// WithCommand returns a copy of the args with the command key replaced by
// the given text. All other keys are preserved unchanged.
func (a Args) WithCommand(command string) Args {
	cloned := a.Clone()

	encoded, err := json.Marshal(command)
	if err != nil {
		// Marshaling a string cannot fail; keep the original on the off chance.
		return cloned
	}

	cloned[CommandKey] = json.RawMessage(encoded)

	return cloned
}

// Request represents a single parsed tool invocation presented to the hook.
// Defaulting for absent fields happens once, at parse time: rule logic never
// needs to distinguish "absent" from "empty".
type Request struct {
	// Tool is the name of the tool being invoked. Empty when absent or not
	// a string in the input.
	Tool string

	// Args contains the tool arguments. Never nil.
	Args Args

	// Command is the decoded args["command"] text. Empty when absent.
	Command string

	// RawJSON contains the original JSON input for debugging.
	RawJSON string
}

// IsTool reports whether the request targets the given tool name.
func (r *Request) IsTool(name string) bool {
	return r.Tool == name
}

// HasCommand reports whether the request carries a non-empty command.
func (r *Request) HasCommand() bool {
	return r.Command != ""
}
