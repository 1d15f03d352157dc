package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IlRand0m/ps2intrin-sub000/insts"
)

var _ = Describe("Op classification", func() {
	Describe("Kind", func() {
		It("should class the multiply and divide families by pipeline resource", func() {
			Expect(insts.OpMULT.Kind()).To(Equal(insts.KindMultiply))
			Expect(insts.OpMADDU1.Kind()).To(Equal(insts.KindMultiply))
			Expect(insts.OpDIV.Kind()).To(Equal(insts.KindDivide))
			Expect(insts.OpDIVU1.Kind()).To(Equal(insts.KindDivide))
			Expect(insts.OpMFLO.Kind()).To(Equal(insts.KindAccMove))
			Expect(insts.OpQFSRV.Kind()).To(Equal(insts.KindSA))
			Expect(insts.OpPADD.Kind()).To(Equal(insts.KindMMI))
			Expect(insts.OpLQ.Kind()).To(Equal(insts.KindMemory))
			Expect(insts.OpNOP.Kind()).To(Equal(insts.KindNOP))
		})
	})

	Describe("DefinesAcc", func() {
		It("should map each family to its pipeline", func() {
			pipe, ok := insts.OpMULT.DefinesAcc()
			Expect(ok).To(BeTrue())
			Expect(pipe).To(Equal(0))

			pipe, ok = insts.OpDIV1.DefinesAcc()
			Expect(ok).To(BeTrue())
			Expect(pipe).To(Equal(1))

			_, ok = insts.OpMFLO.DefinesAcc()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("ReadsAcc", func() {
		It("should cover the moves and the accumulate family", func() {
			pipe, ok := insts.OpMFHI1.ReadsAcc()
			Expect(ok).To(BeTrue())
			Expect(pipe).To(Equal(1))

			pipe, ok = insts.OpMADD.ReadsAcc()
			Expect(ok).To(BeTrue())
			Expect(pipe).To(Equal(0))

			_, ok = insts.OpMULT.ReadsAcc()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("TouchesSA", func() {
		It("should cover exactly the SA moves and the funnel shift", func() {
			Expect(insts.OpMTSAB.TouchesSA()).To(BeTrue())
			Expect(insts.OpMTSAH.TouchesSA()).To(BeTrue())
			Expect(insts.OpQFSRV.TouchesSA()).To(BeTrue())
			Expect(insts.OpMULT.TouchesSA()).To(BeFalse())
			Expect(insts.OpNOP.TouchesSA()).To(BeFalse())
		})
	})

	Describe("String", func() {
		It("should return the mnemonic", func() {
			Expect(insts.OpMULT1.String()).To(Equal("MULT1"))
			Expect(insts.OpQFSRV.String()).To(Equal("QFSRV"))
			Expect(insts.Op(9999).String()).To(Equal("UNKNOWN"))
		})
	})
})
