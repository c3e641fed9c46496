package store_test

import (
	"context"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

var _ = Describe("Cached repository without redis", func() {
	var (
		ctx    context.Context
		client *redis.Client
		repo   store.AccountStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		// Nothing listens here; every cache call fails fast.
		client = redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		DeferCleanup(client.Close)

		cache := store.NewCache(client, "test", time.Minute)
		stores, err := store.NewStores(ctx, store.NewMemoryBackend(), store.DefaultCollections(), cache)
		Expect(err).NotTo(HaveOccurred())
		repo = stores.Accounts()
	})

	It("falls back to the backend when redis is unreachable", func() {
		a := model.NewAccount("12345678901", "Ana", "ana@example.com", "hash", model.RoleUser, nil)
		Expect(repo.Insert(ctx, a)).To(Succeed())

		got, err := repo.GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Email).To(Equal("ana@example.com"))

		a.Apply(model.AccountUpdate{Name: "Ana", Email: "new@example.com", Secret: "hash", Role: model.RoleUser})
		Expect(repo.Replace(ctx, a.GetID(), a)).To(Succeed())

		got, err = repo.GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Email).To(Equal("new@example.com"))

		Expect(repo.Delete(ctx, a.GetID())).To(Succeed())
		_, err = repo.GetByID(ctx, a.GetID())
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("passes not found through from the backend", func() {
		Expect(repo.Delete(ctx, missingID)).To(MatchError(store.ErrNotFound))
		_, err := repo.GetByID(ctx, "malformed")
		Expect(err).To(MatchError(store.ErrNotFound))
	})
})

var _ = Describe("Cached repository", func() {
	var (
		ctx     context.Context
		mr      *miniredis.Miniredis
		backend *store.MemoryBackend
		cached  *store.Stores
		direct  *store.Stores
	)

	cacheKey := func(collection, docID string) string {
		return "test:" + collection + ":" + docID
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		mr, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mr.Close)

		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)

		backend = store.NewMemoryBackend()
		cache := store.NewCache(client, "test", time.Minute)
		cached, err = store.NewStores(ctx, backend, store.DefaultCollections(), cache)
		Expect(err).NotTo(HaveOccurred())
		// Same backend, no cache: writes here bypass invalidation.
		direct, err = store.NewStores(ctx, backend, store.DefaultCollections(), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("serves a hit with every field intact", func() {
		phone := int64(5511999990000)
		a := model.NewAccount("12345678901", "Ana", "ana@example.com", "hash", model.RoleAdmin, &phone)
		Expect(cached.Accounts().Insert(ctx, a)).To(Succeed())

		first, err := cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(mr.Exists(cacheKey("accounts", a.GetID()))).To(BeTrue())
		Expect(mr.TTL(cacheKey("accounts", a.GetID()))).To(Equal(time.Minute))

		stale := *first
		stale.Name = "Changed Behind The Cache"
		Expect(direct.Accounts().Replace(ctx, a.GetID(), &stale)).To(Succeed())

		hit, err := cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(hit).To(Equal(first))
		Expect(hit.ID).To(Equal(a.ID))
		Expect(*hit.Phone).To(Equal(phone))
	})

	It("round-trips dates and skills through the cache", func() {
		founded := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
		o := model.NewOrganization("12345678000199", "", "Nebulo", "hub", "", founded, []string{"go", "go"}, missingID)
		Expect(cached.Organizations().Insert(ctx, o)).To(Succeed())

		_, err := cached.Organizations().GetByID(ctx, o.GetID())
		Expect(err).NotTo(HaveOccurred())
		hit, err := cached.Organizations().GetByID(ctx, o.GetID())
		Expect(err).NotTo(HaveOccurred())

		Expect(hit.FoundedOn.Equal(founded)).To(BeTrue())
		Expect(hit.Skills).To(Equal([]string{"go", "go"}))
		Expect(hit.GetID()).To(Equal(o.GetID()))
	})

	It("invalidates on replace", func() {
		a := newAccount("ana@example.com")
		Expect(cached.Accounts().Insert(ctx, a)).To(Succeed())
		_, err := cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())

		a.Apply(model.AccountUpdate{Name: "Ana", Email: "new@example.com", Secret: "hash", Role: model.RoleUser})
		Expect(cached.Accounts().Replace(ctx, a.GetID(), a)).To(Succeed())
		Expect(mr.Exists(cacheKey("accounts", a.GetID()))).To(BeFalse())

		got, err := cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Email).To(Equal("new@example.com"))
	})

	It("invalidates on delete", func() {
		a := newAccount("ana@example.com")
		Expect(cached.Accounts().Insert(ctx, a)).To(Succeed())
		_, err := cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())

		Expect(cached.Accounts().Delete(ctx, a.GetID())).To(Succeed())

		_, err = cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("keys documents by the canonical id whatever the spelling", func() {
		a := newAccount("ana@example.com")
		Expect(cached.Accounts().Insert(ctx, a)).To(Succeed())
		upper := strings.ToUpper(a.GetID())

		got, err := cached.Accounts().GetByID(ctx, upper)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.GetID()).To(Equal(a.GetID()))
		Expect(mr.Keys()).To(ConsistOf(cacheKey("accounts", a.GetID())))

		Expect(cached.Accounts().Delete(ctx, a.GetID())).To(Succeed())

		_, err = cached.Accounts().GetByID(ctx, upper)
		Expect(err).To(MatchError(store.ErrNotFound))
		Expect(mr.Keys()).To(BeEmpty())
	})

	It("ignores an undecodable entry and refills it", func() {
		a := newAccount("ana@example.com")
		Expect(cached.Accounts().Insert(ctx, a)).To(Succeed())
		Expect(mr.Set(cacheKey("accounts", a.GetID()), "{not json")).To(Succeed())

		got, err := cached.Accounts().GetByID(ctx, a.GetID())
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Email).To(Equal("ana@example.com"))

		raw, err := mr.Get(cacheKey("accounts", a.GetID()))
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(ContainSubstring("ana@example.com"))
	})
})
