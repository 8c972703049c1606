package hookresponse_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookgate/internal/hookresponse"
	"github.com/smykla-skalski/hookgate/internal/interceptor"
	"github.com/smykla-skalski/hookgate/pkg/hook"
)

var _ = Describe("Response", func() {
	Describe("FromDecision", func() {
		It("maps a block decision to the block shape", func() {
			resp := hookresponse.FromDecision(interceptor.Block("denied"))

			Expect(resp.Block).To(BeTrue())
			Expect(resp.Reason).To(Equal("denied"))
			Expect(resp.Args).To(BeNil())
		})

		It("maps a mutate decision to the args shape", func() {
			args := hook.Args{"command": json.RawMessage(`"echo hi"`)}
			resp := hookresponse.FromDecision(interceptor.Mutate(args))

			Expect(resp.Block).To(BeFalse())
			Expect(resp.Args).To(Equal(args))
		})

		It("maps a pass decision to the empty shape", func() {
			resp := hookresponse.FromDecision(interceptor.Pass())

			Expect(resp).To(Equal(&hookresponse.Response{}))
		})

		It("maps a nil decision to the empty shape", func() {
			resp := hookresponse.FromDecision(nil)

			Expect(resp).To(Equal(&hookresponse.Response{}))
		})
	})

	Describe("Write", func() {
		It("writes the pass-through shape as an empty object", func() {
			var buf bytes.Buffer

			Expect(hookresponse.Write(&buf, &hookresponse.Response{})).To(Succeed())
			Expect(buf.String()).To(Equal("{}\n"))
		})

		It("writes the block shape as a single line", func() {
			var buf bytes.Buffer
			resp := hookresponse.FromDecision(interceptor.Block("denied"))

			Expect(hookresponse.Write(&buf, resp)).To(Succeed())
			Expect(buf.String()).To(Equal(`{"block":true,"reason":"denied"}` + "\n"))
		})

		It("writes the mutation shape with opaque values intact", func() {
			var buf bytes.Buffer
			resp := hookresponse.FromDecision(interceptor.Mutate(hook.Args{
				"command": json.RawMessage(`"echo hi"`),
				"timeout": json.RawMessage(`30`),
			}))

			Expect(hookresponse.Write(&buf, resp)).To(Succeed())
			Expect(buf.String()).To(HaveSuffix("\n"))
			Expect(buf.String()).To(MatchJSON(`{"args":{"command":"echo hi","timeout":30}}`))
		})
	})

	Describe("WriteError", func() {
		It("writes the error report shape", func() {
			var buf bytes.Buffer

			Expect(hookresponse.WriteError(&buf, errors.New("boom"))).To(Succeed())
			Expect(buf.String()).To(MatchJSON(`{"error":"boom"}`))
			Expect(buf.String()).To(HaveSuffix("\n"))
		})
	})
})
