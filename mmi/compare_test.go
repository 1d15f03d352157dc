package mmi_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IlRand0m/ps2intrin-sub000/mmi"
)

var _ = Describe("Logic, compare and min/max", func() {
	Describe("Bitwise logic", func() {
		a := mmi.FromDwords(0xF0F0F0F0F0F0F0F0, 0x00FF00FF00FF00FF)
		b := mmi.FromDwords(0xFF00FF00FF00FF00, 0x0F0F0F0F0F0F0F0F)

		It("should compute AND/OR/XOR/NOR across all 128 bits", func() {
			Expect(mmi.PAND(a, b)).To(Equal(
				mmi.FromDwords(0xF000F000F000F000, 0x000F000F000F000F)))
			Expect(mmi.POR(a, b)).To(Equal(
				mmi.FromDwords(0xFFF0FFF0FFF0FFF0, 0x0FFF0FFF0FFF0FFF)))
			Expect(mmi.PXOR(a, b)).To(Equal(
				mmi.FromDwords(0x0FF00FF00FF00FF0, 0x0FF00FF00FF00FF0)))
			Expect(mmi.PNOR(a, b)).To(Equal(
				mmi.FromDwords(0x000F000F000F000F, 0xF000F000F000F000)))
		})
	})

	Describe("Equality compare", func() {
		It("should produce all-ones lanes where equal, zeros elsewhere", func() {
			a := mmi.FromWords([4]uint32{1, 2, 3, 4})
			b := mmi.FromWords([4]uint32{1, 9, 3, 9})

			got := mmi.PCEQW(a, b).Words()

			Expect(got[0]).To(Equal(uint32(0xFFFFFFFF)))
			Expect(got[1]).To(Equal(uint32(0)))
			Expect(got[2]).To(Equal(uint32(0xFFFFFFFF)))
			Expect(got[3]).To(Equal(uint32(0)))
		})

		It("should compare byte and halfword lanes independently", func() {
			a := mmi.Splat8(7)
			Expect(mmi.PCEQB(a, a)).To(Equal(mmi.Splat8(0xFF)))

			h := mmi.Splat16(7)
			Expect(mmi.PCEQH(h, mmi.Splat16(8))).To(Equal(mmi.Splat16(0)))
		})
	})

	Describe("Signed greater-than compare", func() {
		It("should treat lanes as signed", func() {
			// 0xFF is -1 as a signed byte: 1 > -1.
			a := mmi.Splat8(1)
			b := mmi.Splat8(0xFF)

			Expect(mmi.PCGTB(a, b)).To(Equal(mmi.Splat8(0xFF)))
			Expect(mmi.PCGTB(b, a)).To(Equal(mmi.Splat8(0)))
		})

		It("should compare halfword and word lanes", func() {
			Expect(mmi.PCGTH(mmi.Splat16(0x8000), mmi.Splat16(0))).
				To(Equal(mmi.Splat16(0)))
			Expect(mmi.PCGTW(mmi.Splat32(5), mmi.Splat32(0xFFFFFFFF))).
				To(Equal(mmi.Splat32(0xFFFFFFFF)))
		})
	})

	Describe("Min/max", func() {
		It("should select signed extremes per lane", func() {
			a := mmi.FromHalfwords([8]uint16{0x8000, 5, 0xFFFF, 100, 0, 0, 0, 0})
			b := mmi.FromHalfwords([8]uint16{0x7FFF, 6, 0x0001, 99, 0, 0, 0, 0})

			maxGot := mmi.PMAXH(a, b).Halfwords()
			minGot := mmi.PMINH(a, b).Halfwords()

			Expect(maxGot[0]).To(Equal(uint16(0x7FFF)))
			Expect(maxGot[1]).To(Equal(uint16(6)))
			Expect(maxGot[2]).To(Equal(uint16(1)))
			Expect(maxGot[3]).To(Equal(uint16(100)))

			Expect(minGot[0]).To(Equal(uint16(0x8000)))
			Expect(minGot[1]).To(Equal(uint16(5)))
			Expect(minGot[2]).To(Equal(uint16(0xFFFF)))
			Expect(minGot[3]).To(Equal(uint16(99)))
		})

		It("should select signed extremes per word lane", func() {
			a := mmi.FromWords([4]uint32{0x80000000, 10, 0xFFFFFFFF, 0})
			b := mmi.FromWords([4]uint32{1, 9, 1, 0})

			got := mmi.PMAXW(a, b).Words()

			Expect(got[0]).To(Equal(uint32(1)))
			Expect(got[1]).To(Equal(uint32(10)))
			Expect(got[2]).To(Equal(uint32(1)))

			Expect(mmi.PMINW(a, b).Words()[0]).To(Equal(uint32(0x80000000)))
		})
	})
})
