// SPDX-License-Identifier: MIT

package polynomial_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/linalg/num"
	"github.com/katalvlaran/linalg/polynomial"
)

var _ = Describe("Polynomial", func() {
	Describe("construction", func() {
		It("copies its input", func() {
			in := []int{1, 2, 3}
			p := polynomial.New(in...)
			in[0] = 99
			Expect(p.Coefficients()).To(Equal([]int{1, 2, 3}))
		})

		It("keeps leading zeros until minified", func() {
			p := polynomial.New(0, 0, 4, 2)
			Expect(p.Len()).To(Equal(4))
			Expect(p.Minify().Coefficients()).To(Equal([]int{4, 2}))
			Expect(p.Equal(polynomial.New(4, 2))).To(BeTrue())
		})

		It("reports the degree of the minified form", func() {
			Expect(polynomial.New(0, 4, 3).Degree()).To(Equal(1))
			Expect(polynomial.New(7).Degree()).To(Equal(0))
			Expect(polynomial.New(0, 0).Degree()).To(Equal(-1))
			Expect(polynomial.Polynomial[float64]{}.IsZero()).To(BeTrue())
		})
	})

	Describe("arithmetic", func() {
		DescribeTable("Add",
			func(a, b, want []int) {
				Expect(polynomial.New(a...).Add(polynomial.New(b...)).Coefficients()).To(Equal(want))
			},
			Entry("same length", []int{1, 2, 3}, []int{-5, 3, 10}, []int{-4, 5, 13}),
			Entry("leading terms cancel", []int{2, 0, 5, -6}, []int{-2, 0, 1, 3}, []int{6, -3}),
			Entry("shorter right operand", []int{1, 0, 0}, []int{2, 3}, []int{1, 2, 3}),
		)

		DescribeTable("scalar forms",
			func(got polynomial.Polynomial[int], want []int) {
				Expect(got.Coefficients()).To(Equal(want))
			},
			Entry("AddScalar", polynomial.New(1, 2, 3).AddScalar(10), []int{1, 2, 13}),
			Entry("AddScalar minifies", polynomial.New(0, 0, 5, -6).AddScalar(4), []int{5, -2}),
			Entry("SubScalar", polynomial.New(1, 2, 3).SubScalar(3), []int{1, 2, 0}),
			Entry("Scale", polynomial.New(1, 2, 3).Scale(-4), []int{-4, -8, -12}),
			Entry("Scale again", polynomial.New(1, 3, -4).Scale(2), []int{2, 6, -8}),
		)

		DescribeTable("Mul",
			func(a, b, want []int) {
				Expect(polynomial.New(a...).Mul(polynomial.New(b...)).Coefficients()).To(Equal(want))
				Expect(polynomial.New(b...).Mul(polynomial.New(a...)).Coefficients()).To(Equal(want))
			},
			Entry("quadratics", []int{1, -2, 3}, []int{4, 5, -6}, []int{4, -3, -4, 27, -18}),
			Entry("quadratics again", []int{2, 5, -6}, []int{4, 1, 3}, []int{8, 22, -13, 9, -18}),
			Entry("by one", []int{3, -5, 1}, []int{1}, []int{3, -5, 1}),
			Entry("ignores leading zeros", []int{0, 1, 1}, []int{0, 0, 1, -1}, []int{1, 0, -1}),
		)

		It("multiplies by the zero polynomial to zero", func() {
			Expect(polynomial.New(1, 2).Mul(polynomial.New[int]()).IsZero()).To(BeTrue())
		})

		It("subtracts to the zero polynomial", func() {
			p := polynomial.New(1, 2, 3)
			d := p.Sub(p)
			Expect(d.IsZero()).To(BeTrue())
			Expect(d.String()).To(Equal("0"))
		})

		It("negates every coefficient", func() {
			Expect(polynomial.New(1, -2, 0).Neg().Coefficients()).To(Equal([]int{-1, 2, 0}))
		})

		It("never aliases its operands", func() {
			a := polynomial.New(1, 2)
			b := polynomial.New(3)
			_ = a.Add(b)
			_ = a.Mul(b)
			Expect(a.Coefficients()).To(Equal([]int{1, 2}))
			Expect(b.Coefficients()).To(Equal([]int{3}))
		})
	})

	Describe("evaluation", func() {
		It("uses Horner's scheme in the element type", func() {
			p := polynomial.New(3, -5, 1)
			Expect(p.Eval(2)).To(Equal(3))
			Expect(p.EvalFloat(0.5)).To(BeNumerically("~", -0.75, 1e-15))
		})
	})

	Describe("RealRoots", func() {
		DescribeTable("closed forms",
			func(coeffs []float64, want []float64) {
				roots, err := polynomial.New(coeffs...).RealRoots()
				Expect(err).NotTo(HaveOccurred())
				Expect(roots).To(Equal(want))
			},
			Entry("two roots, larger first", []float64{1, 1, -6}, []float64{2, -3}),
			Entry("double root", []float64{1, -2, 1}, []float64{1}),
			Entry("no real roots", []float64{1, 0, 1}, []float64{}),
			Entry("linear", []float64{2, -4}, []float64{2}),
			Entry("constant", []float64{5}, []float64{}),
			Entry("leading zeros", []float64{0, 0, 1, 1, -6}, []float64{2, -3}),
		)

		It("solves integer coefficients in float64", func() {
			roots, err := polynomial.New(1, 1, -6).RealRoots()
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(Equal([]float64{2, -3}))
		})

		It("rejects the zero polynomial", func() {
			_, err := polynomial.New(0, 0).RealRoots()
			Expect(err).To(MatchError(polynomial.ErrZeroPolynomial))
		})

		It("rejects degrees above two", func() {
			_, err := polynomial.New(1, 0, 0, -8).RealRoots()
			Expect(err).To(MatchError(polynomial.ErrUnsupportedDegree))
			Expect(err.Error()).To(ContainSubstring("degree 3"))
		})
	})

	Describe("String", func() {
		DescribeTable("integer coefficients",
			func(coeffs []int, want string) {
				Expect(polynomial.New(coeffs...).String()).To(Equal(want))
			},
			Entry("quadratic", []int{3, -5, 1}, "3x²-5x+1"),
			Entry("unit leading term", []int{1, 0, -1}, "x²-1"),
			Entry("negative unit", []int{-1, 2, 0}, "-x²+2x"),
			Entry("constant", []int{7}, "7"),
			Entry("negative unit constant", []int{-1}, "-1"),
			Entry("leading zeros", []int{0, 0, 1, 1}, "x+1"),
			Entry("multi-digit power", []int{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, "2x¹¹+1"),
			Entry("empty", []int{}, "0"),
		)

		It("prints float coefficients exactly or rounded", func() {
			Expect(polynomial.New[float32](0.1, 0).String()).To(Equal("0.1x"))
			Expect(polynomial.New(0.5, -1.25).Format(2)).To(Equal("0.50x-1.25"))
			Expect(polynomial.New(2, 3).Format(2)).To(Equal("2x+3"))
		})
	})

	Describe("Dtype", func() {
		It("widens integer coefficients", func() {
			f, err := polynomial.Dtype[float64](polynomial.New(1, -2))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Coefficients()).To(Equal([]float64{1, -2}))
		})

		It("refuses to truncate", func() {
			_, err := polynomial.Dtype[int](polynomial.New(1.5, 2))
			Expect(err).To(MatchError(num.ErrConversion))
			Expect(err.Error()).To(ContainSubstring("coefficient 0"))
		})
	})
})
