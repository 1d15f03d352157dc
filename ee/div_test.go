package ee_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IlRand0m/ps2intrin-sub000/ee"
)

var _ = Describe("Divide family", func() {
	var acc *ee.Acc[ee.Shadowed]

	BeforeEach(func() {
		acc = ee.AccFor[ee.Shadowed](ee.Pipe0)
	})

	Describe("Div (signed)", func() {
		It("should truncate toward zero with the remainder following the dividend", func() {
			cases := []struct {
				rs, rt int32
				q, r   int32
			}{
				// All four sign quadrants.
				{22, 7, 3, 1},
				{-22, 7, -3, -1},
				{22, -7, -3, 1},
				{-22, -7, 3, -1},
				// Boundary values.
				{math.MaxInt32, 1, math.MaxInt32, 0},
				{math.MaxInt32, -1, -math.MaxInt32, 0},
				{math.MinInt32, 1, math.MinInt32, 0},
				{math.MinInt32, math.MaxInt32, -1, -1},
				{-1, math.MaxInt32, 0, -1},
				{0, -7, 0, 0},
				{1, math.MinInt32, 0, 1},
				{-21, 7, -3, 0},
			}

			for _, c := range cases {
				acc.DivStart(c.rs, c.rt)

				Expect(acc.DivFinishLo()).To(Equal(c.q),
					"quotient of %d / %d", c.rs, c.rt)
				Expect(acc.DivFinishHi()).To(Equal(c.r),
					"remainder of %d / %d", c.rs, c.rt)
			}
		})

		It("should yield MIN quotient and zero remainder for MIN / -1", func() {
			for _, pipe := range []ee.Pipeline{ee.Pipe0, ee.Pipe1} {
				h := ee.AccFor[ee.Shadowed](pipe)

				got := h.Div(math.MinInt32, -1)

				Expect(got.Lo).To(Equal(int32(math.MinInt32)))
				Expect(got.Hi).To(Equal(int32(0)))
			}
		})

		It("should yield MIN / -1 without fault in direct mode too", func() {
			h := ee.AccFor[ee.Direct](ee.Pipe1)

			got := h.Div(math.MinInt32, -1)

			Expect(got).To(Equal(ee.LoHi{Lo: math.MinInt32, Hi: 0}))
		})

		It("should define a well-formed pair on divide by zero", func() {
			// The values are unspecified by contract; only absence of
			// a fault and a defined pair are promised.
			Expect(func() { acc.Div(42, 0) }).NotTo(Panic())
			Expect(func() { acc.Div(-42, 0) }).NotTo(Panic())

			acc.DivStart(7, 0)
			_ = acc.DivFinish()
		})

		It("should sign-extend quotient and remainder into the slots", func() {
			acc.DivStart(-22, 7)

			Expect(acc.Lo64()).To(Equal(int64(-3)))
			Expect(acc.Hi64()).To(Equal(int64(-1)))
		})
	})

	Describe("Divu (unsigned)", func() {
		It("should divide as unsigned values", func() {
			cases := []struct {
				rs, rt uint32
				q, r   uint32
			}{
				{22, 7, 3, 1},
				{math.MaxUint32, 1, math.MaxUint32, 0},
				{math.MaxUint32, 2, math.MaxUint32 / 2, 1},
				{0x80000000, 3, 0x2AAAAAAA, 2},
				{0, 5, 0, 0},
			}

			for _, c := range cases {
				got := acc.Divu(c.rs, c.rt)

				Expect(got.Lo).To(Equal(c.q), "quotient of %d / %d", c.rs, c.rt)
				Expect(got.Hi).To(Equal(c.r), "remainder of %d / %d", c.rs, c.rt)
			}
		})

		It("should define a well-formed pair on divide by zero", func() {
			Expect(func() { acc.Divu(42, 0) }).NotTo(Panic())
		})
	})
})
