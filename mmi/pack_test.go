package mmi_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IlRand0m/ps2intrin-sub000/mmi"
)

var _ = Describe("Pack and unpack", func() {
	var a, b mmi.Vec128

	BeforeEach(func() {
		// a's byte lane i holds 0xA0+i, b's holds i.
		var ab, bb [16]byte
		for i := 0; i < 16; i++ {
			ab[i] = byte(0xA0 + i)
			bb[i] = byte(i)
		}
		a = mmi.FromBytes(ab)
		b = mmi.FromBytes(bb)
	})

	Describe("PPACB", func() {
		It("should pack the low byte of every halfword lane", func() {
			got := mmi.PPACB(a, b).Bytes()

			for i := 0; i < 8; i++ {
				Expect(got[i]).To(Equal(byte(2 * i)))
				Expect(got[i+8]).To(Equal(byte(0xA0 + 2*i)))
			}
		})
	})

	Describe("PPACH", func() {
		It("should pack the low halfword of every word lane", func() {
			x := mmi.FromWords([4]uint32{0x11112222, 0x33334444, 0x55556666, 0x77778888})
			y := mmi.FromWords([4]uint32{0x9999AAAA, 0xBBBBCCCC, 0xDDDDEEEE, 0xFFFF0000})

			got := mmi.PPACH(x, y).Halfwords()

			Expect(got[0]).To(Equal(uint16(0xAAAA)))
			Expect(got[1]).To(Equal(uint16(0xCCCC)))
			Expect(got[2]).To(Equal(uint16(0xEEEE)))
			Expect(got[3]).To(Equal(uint16(0x0000)))
			Expect(got[4]).To(Equal(uint16(0x2222)))
			Expect(got[5]).To(Equal(uint16(0x4444)))
			Expect(got[6]).To(Equal(uint16(0x6666)))
			Expect(got[7]).To(Equal(uint16(0x8888)))
		})
	})

	Describe("PPACW", func() {
		It("should pack the even word lanes", func() {
			x := mmi.FromWords([4]uint32{1, 2, 3, 4})
			y := mmi.FromWords([4]uint32{5, 6, 7, 8})

			Expect(mmi.PPACW(x, y)).To(Equal(mmi.FromWords([4]uint32{5, 7, 1, 3})))
		})
	})

	Describe("PEXTLB / PEXTUB", func() {
		It("should interleave the lower byte lanes, b lanes in even positions", func() {
			got := mmi.PEXTLB(a, b).Bytes()

			for i := 0; i < 8; i++ {
				Expect(got[2*i]).To(Equal(byte(i)))
				Expect(got[2*i+1]).To(Equal(byte(0xA0 + i)))
			}
		})

		It("should interleave the upper byte lanes", func() {
			got := mmi.PEXTUB(a, b).Bytes()

			for i := 0; i < 8; i++ {
				Expect(got[2*i]).To(Equal(byte(i + 8)))
				Expect(got[2*i+1]).To(Equal(byte(0xA8 + i)))
			}
		})
	})

	Describe("PEXTLH / PEXTUH", func() {
		It("should interleave halfword lanes", func() {
			x := mmi.FromHalfwords([8]uint16{0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7})
			y := mmi.FromHalfwords([8]uint16{0, 1, 2, 3, 4, 5, 6, 7})

			Expect(mmi.PEXTLH(x, y)).To(Equal(
				mmi.FromHalfwords([8]uint16{0, 0xA0, 1, 0xA1, 2, 0xA2, 3, 0xA3})))
			Expect(mmi.PEXTUH(x, y)).To(Equal(
				mmi.FromHalfwords([8]uint16{4, 0xA4, 5, 0xA5, 6, 0xA6, 7, 0xA7})))
		})
	})

	Describe("PEXTLW / PEXTUW", func() {
		It("should interleave word lanes", func() {
			x := mmi.FromWords([4]uint32{0xA0, 0xA1, 0xA2, 0xA3})
			y := mmi.FromWords([4]uint32{0, 1, 2, 3})

			Expect(mmi.PEXTLW(x, y)).To(Equal(mmi.FromWords([4]uint32{0, 0xA0, 1, 0xA1})))
			Expect(mmi.PEXTUW(x, y)).To(Equal(mmi.FromWords([4]uint32{2, 0xA2, 3, 0xA3})))
		})
	})

	Describe("Lane views", func() {
		It("should reinterpret between views without changing the value", func() {
			v := mmi.FromWords([4]uint32{0x03020100, 0x07060504, 0x0B0A0908, 0x0F0E0D0C})

			bytes := v.Bytes()
			for i := range bytes {
				Expect(bytes[i]).To(Equal(byte(i)))
			}
			Expect(mmi.FromBytes(bytes)).To(Equal(v))
		})
	})
})
