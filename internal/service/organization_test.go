package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

var _ = Describe("OrganizationService", func() {
	var (
		ctx   context.Context
		svc   service.OrganizationService
		today = time.Date(2025, 6, 1, 17, 45, 0, 0, time.UTC)
	)

	input := func() service.OrganizationInput {
		return service.OrganizationInput{
			TaxID:       "12345678000199",
			Video:       "https://videos.example.com/pitch",
			Name:        "Nebulo",
			Description: "Startup hub",
			Website:     "https://nebulo.example.com",
			Skills:      []string{"go", "mongo", "go"},
			OwnerID:     missingID,
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		stores := newMemoryStores(ctx)
		svc = service.NewOrganizationService(stores.Organizations(), nil, service.WithClock(func() time.Time { return today }))
	})

	It("defaults the founding date to today", func() {
		org, err := svc.Create(ctx, input())
		Expect(err).NotTo(HaveOccurred())
		Expect(org.FoundedOn).To(Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("keeps an explicit founding date", func() {
		in := input()
		in.FoundedOn = time.Date(2019, 2, 3, 0, 0, 0, 0, time.UTC)

		org, err := svc.Create(ctx, in)
		Expect(err).NotTo(HaveOccurred())
		Expect(org.FoundedOn).To(Equal(in.FoundedOn))
	})

	It("round-trips skills in order with duplicates", func() {
		org, err := svc.Create(ctx, input())
		Expect(err).NotTo(HaveOccurred())

		fetched, err := svc.Get(ctx, org.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(fetched.Skills).To(Equal([]string{"go", "mongo", "go"}))
		Expect(fetched.FoundedOn).To(Equal(org.FoundedOn))
	})

	Describe("Update", func() {
		It("keeps the stored founding date when none is supplied", func() {
			in := input()
			in.FoundedOn = time.Date(2019, 2, 3, 0, 0, 0, 0, time.UTC)
			org, err := svc.Create(ctx, in)
			Expect(err).NotTo(HaveOccurred())

			upd := input()
			upd.Name = "Nebulo Hub"
			updated, err := svc.Update(ctx, org.GetID(), upd)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Nebulo Hub"))
			Expect(updated.FoundedOn).To(Equal(in.FoundedOn))
		})

		It("is idempotent", func() {
			org, err := svc.Create(ctx, input())
			Expect(err).NotTo(HaveOccurred())

			upd := input()
			upd.TaxID = "99999999000100"
			first, err := svc.Update(ctx, org.GetID(), upd)
			Expect(err).NotTo(HaveOccurred())
			second, err := svc.Update(ctx, org.GetID(), upd)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("reports unknown organizations as not found", func() {
			_, err := svc.Update(ctx, "xyz", input())
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	It("deletes once", func() {
		org, err := svc.Create(ctx, input())
		Expect(err).NotTo(HaveOccurred())

		existed, err := svc.Delete(ctx, org.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(existed).To(BeTrue())

		existed, err = svc.Delete(ctx, org.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(existed).To(BeFalse())
	})
})
