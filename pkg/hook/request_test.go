package hook_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/hookgate/pkg/hook"
)

var _ = Describe("Args", func() {
	Describe("WithCommand", func() {
		It("replaces the command and keeps other keys", func() {
			args := hook.Args{
				"command": json.RawMessage(`"echo hi"`),
				"cwd":     json.RawMessage(`"/tmp"`),
			}

			replaced := args.WithCommand("echo bye")

			Expect(string(replaced["command"])).To(Equal(`"echo bye"`))
			Expect(string(replaced["cwd"])).To(Equal(`"/tmp"`))
		})

		It("leaves the receiver untouched", func() {
			args := hook.Args{"command": json.RawMessage(`"a"`)}

			_ = args.WithCommand("b")

			Expect(string(args["command"])).To(Equal(`"a"`))
		})

		It("adds the command key when absent", func() {
			replaced := hook.Args{}.WithCommand("ls")

			Expect(string(replaced["command"])).To(Equal(`"ls"`))
		})

		It("encodes special characters as JSON", func() {
			replaced := hook.Args{}.WithCommand(`say "hi"`)

			var decoded string
			Expect(json.Unmarshal(replaced["command"], &decoded)).To(Succeed())
			Expect(decoded).To(Equal(`say "hi"`))
		})
	})
})

var _ = Describe("Request", func() {
	It("matches its tool name exactly", func() {
		req := &hook.Request{Tool: "my_bash_tool"}

		Expect(req.IsTool("my_bash_tool")).To(BeTrue())
		Expect(req.IsTool("My_Bash_Tool")).To(BeFalse())
		Expect(req.IsTool("")).To(BeFalse())
	})

	It("reports command presence", func() {
		Expect((&hook.Request{Command: "ls"}).HasCommand()).To(BeTrue())
		Expect((&hook.Request{}).HasCommand()).To(BeFalse())
	})
})
