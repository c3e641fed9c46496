package service_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

var _ = Describe("Paginate", func() {
	It("returns min(size, max(0, N-(page-1)*size)) items", func() {
		for n := 0; n <= 12; n++ {
			items := seq(n)
			for size := 1; size <= 5; size++ {
				for page := 1; page <= 6; page++ {
					want := max(0, min(size, n-(page-1)*size))
					Expect(service.Paginate(items, page, size)).To(HaveLen(want),
						"n=%d size=%d page=%d", n, size, page)
				}
			}
		}
	})

	It("partitions the collection without gaps or overlap", func() {
		items := seq(23)
		var joined []int
		for page := 1; ; page++ {
			p := service.Paginate(items, page, 5)
			if len(p) == 0 {
				break
			}
			joined = append(joined, p...)
		}
		Expect(joined).To(Equal(items))
	})

	It("clamps non-positive pages to the first page", func() {
		items := seq(5)
		Expect(service.Paginate(items, 0, 2)).To(Equal([]int{0, 1}))
		Expect(service.Paginate(items, -3, 2)).To(Equal([]int{0, 1}))
	})

	It("returns an empty page for non-positive sizes", func() {
		Expect(service.Paginate(seq(5), 1, 0)).To(BeEmpty())
		Expect(service.Paginate(seq(5), 1, -1)).To(BeEmpty())
	})

	It("survives extreme inputs", func() {
		Expect(service.Paginate(seq(5), math.MaxInt, math.MaxInt)).To(BeEmpty())
		Expect(service.Paginate(seq(5), 1, math.MaxInt)).To(HaveLen(5))
		Expect(service.Paginate(seq(5), math.MaxInt, 2)).To(BeEmpty())
	})

	It("does not alias the input", func() {
		items := seq(3)
		p := service.Paginate(items, 1, 2)
		p[0] = 99
		Expect(items[0]).To(Equal(0))
	})
})
