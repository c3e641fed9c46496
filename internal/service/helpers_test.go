package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/store"
)

var errMismatch = errors.New("secret mismatch")

const missingID = "65f0c0ffee0123456789abcd"

// newMemoryStores returns stores on a fresh in-memory backend.
func newMemoryStores(ctx context.Context) *store.Stores {
	stores, err := store.NewStores(ctx, store.NewMemoryBackend(), store.DefaultCollections(), nil)
	Expect(err).NotTo(HaveOccurred())
	return stores
}

// fastCost keeps bcrypt cheap in tests.
const fastCost = bcrypt.MinCost
