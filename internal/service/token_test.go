package service_test

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizHNR/NebuloHub-Mongo/core/config"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

var _ = Describe("TokenIssuer", func() {
	var (
		now     time.Time
		issuer  *service.TokenIssuer
		account *model.Account
	)

	BeforeEach(func() {
		now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		issuer = service.NewTokenIssuer(testJWT, service.WithTokenClock(func() time.Time { return now }))

		account = model.NewAccount("12345678901", "Ana", "ana@example.com", "hash", model.RoleUser, nil)
		Expect(account.SetID(missingID)).To(Succeed())
	})

	It("sets registered claims", func() {
		token, expiresAt, err := issuer.Issue(account)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(token, ".")).To(Equal(2))
		Expect(expiresAt).To(Equal(now.Add(service.TokenTTL)))

		claims, err := issuer.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Issuer).To(Equal("nebulohub"))
		Expect([]string(claims.Audience)).To(ConsistOf("nebulohub-api"))
		Expect(claims.IssuedAt.Time).To(BeTemporally("==", now))
		Expect(claims.ID).NotTo(BeEmpty())
	})

	It("gives every token a distinct id", func() {
		t1, _, err := issuer.Issue(account)
		Expect(err).NotTo(HaveOccurred())
		t2, _, err := issuer.Issue(account)
		Expect(err).NotTo(HaveOccurred())

		c1, err := issuer.Validate(t1)
		Expect(err).NotTo(HaveOccurred())
		c2, err := issuer.Validate(t2)
		Expect(err).NotTo(HaveOccurred())
		Expect(c1.ID).NotTo(Equal(c2.ID))
	})

	It("rejects expired tokens", func() {
		token, _, err := issuer.Issue(account)
		Expect(err).NotTo(HaveOccurred())

		now = now.Add(service.TokenTTL + time.Second)
		_, err = issuer.Validate(token)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects tokens signed with another key", func() {
		other := service.NewTokenIssuer(config.JWTConfig{
			Key:      "ffffffffffffffffffffffffffffffff",
			Issuer:   testJWT.Issuer,
			Audience: testJWT.Audience,
		}, service.WithTokenClock(func() time.Time { return now }))
		token, _, err := other.Issue(account)
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Validate(token)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects tokens for another audience", func() {
		other := service.NewTokenIssuer(config.JWTConfig{
			Key:      testJWT.Key,
			Issuer:   testJWT.Issuer,
			Audience: "someone-else",
		}, service.WithTokenClock(func() time.Time { return now }))
		token, _, err := other.Issue(account)
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Validate(token)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects unsigned tokens", func() {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   missingID,
			Issuer:    testJWT.Issuer,
			Audience:  jwt.ClaimStrings{testJWT.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = issuer.Validate(raw)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects garbage", func() {
		_, err := issuer.Validate("not.a.token")
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})
})
