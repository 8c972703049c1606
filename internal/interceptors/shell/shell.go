// Package shell provides interceptors for shell command invocations.
package shell

// GuardedTool is the tool whose commands the shell interceptors inspect.
// Invocations of any other tool pass through untouched.
const GuardedTool = "my_bash_tool"
