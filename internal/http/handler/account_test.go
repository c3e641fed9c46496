package handler_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/handler"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

func storedAccount(id string) *model.Account {
	a := model.NewAccount("12345678901", "Ana", "ana@example.com", "hash", model.RoleUser, nil)
	Expect(a.SetID(id)).To(Succeed())
	return a
}

var _ = Describe("AccountHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAccountService
	)

	validBody := func() map[string]any {
		return map[string]any{
			"nationalId": "12345678901",
			"name":       "Ana",
			"email":      "ana@example.com",
			"password":   "Sup3r$ecret",
			"role":       "USER",
		}
	}

	BeforeEach(func() {
		router = gin.New()
		svc = &mockAccountService{}
		mount(router, "/api/v2/accounts", handler.NewAccountHandler(svc, publicURL))
	})

	Describe("Create", func() {
		It("returns 201 with a self link and no secret", func() {
			var got service.AccountInput
			svc.createFn = func(_ context.Context, in service.AccountInput) (*model.Account, error) {
				got = in
				return storedAccount(knownID), nil
			}

			w := doJSON(router, http.MethodPost, "/api/v2/accounts", validBody())

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got.Secret).To(Equal("Sup3r$ecret"))
			Expect(got.Role).To(Equal(model.RoleUser))

			resp := decode(w)
			Expect(resp["id"]).To(Equal(knownID))
			Expect(resp).NotTo(HaveKey("password"))
			Expect(resp).NotTo(HaveKey("secret"))
			self := publicURL + "/api/v2/accounts/" + knownID
			Expect(resp["links"]).To(HaveKeyWithValue("self", self))
			Expect(w.Header().Get("Location")).To(Equal(self))
		})

		DescribeTable("rejects invalid bodies with 400",
			func(field string, value any, rule string) {
				svc.createFn = func(context.Context, service.AccountInput) (*model.Account, error) {
					Fail("service must not be called")
					return nil, nil
				}
				body := validBody()
				body[field] = value

				w := doJSON(router, http.MethodPost, "/api/v2/accounts", body)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decode(w)["fields"]).To(ContainElement(HaveKeyWithValue("field", field)))
				Expect(w.Body.String()).To(ContainSubstring(`"rule":"` + rule + `"`))
			},
			Entry("short national id", "nationalId", "123", "len"),
			Entry("non-digit national id", "nationalId", "1234567890a", "digits"),
			Entry("bad email", "email", "not-an-email", "email"),
			Entry("weak password", "password", "password1", "strongsecret"),
			Entry("unknown role", "role", "ROOT", "oneof"),
			Entry("non-positive phone", "phone", 0, "gt"),
		)

		It("returns 400 on malformed JSON", func() {
			w := doJSON(router, http.MethodPost, "/api/v2/accounts", `{`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 without detail when the service fails", func() {
			svc.createFn = func(context.Context, service.AccountInput) (*model.Account, error) {
				return nil, errors.New("connection refused")
			}

			w := doJSON(router, http.MethodPost, "/api/v2/accounts", validBody())

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
		})
	})

	Describe("List", func() {
		It("passes paging parameters and wraps the page", func() {
			var page, size int
			svc.listFn = func(_ context.Context, p, s int) ([]*model.Account, error) {
				page, size = p, s
				return []*model.Account{storedAccount(knownID)}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/v2/accounts?page=3&pageSize=5", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(page).To(Equal(3))
			Expect(size).To(Equal(5))
			resp := decode(w)
			Expect(resp["totalItems"]).To(BeNumerically("==", 1))
			Expect(resp["items"]).To(HaveLen(1))
		})

		It("defaults to page 1 of 10", func() {
			var page, size int
			svc.listFn = func(_ context.Context, p, s int) ([]*model.Account, error) {
				page, size = p, s
				return nil, nil
			}

			w := doJSON(router, http.MethodGet, "/api/v2/accounts", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(page).To(Equal(1))
			Expect(size).To(Equal(10))
			Expect(decode(w)["items"]).To(BeEmpty())
		})

		It("rejects non-numeric paging", func() {
			w := doJSON(router, http.MethodGet, "/api/v2/accounts?page=abc", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Get", func() {
		It("returns the account", func() {
			svc.getFn = func(_ context.Context, id string) (*model.Account, error) {
				return storedAccount(id), nil
			}

			w := doJSON(router, http.MethodGet, "/api/v2/accounts/"+knownID, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["email"]).To(Equal("ana@example.com"))
		})

		It("returns 404 for unknown ids", func() {
			w := doJSON(router, http.MethodGet, "/api/v2/accounts/nope", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Update", func() {
		It("ignores the national id", func() {
			var got service.AccountInput
			svc.updateFn = func(_ context.Context, id string, in service.AccountInput) (*model.Account, error) {
				got = in
				return storedAccount(id), nil
			}

			w := doJSON(router, http.MethodPut, "/api/v2/accounts/"+knownID, validBody())

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got.NationalID).To(BeEmpty())
			Expect(got.Email).To(Equal("ana@example.com"))
		})

		It("returns 404 when the account is gone", func() {
			w := doJSON(router, http.MethodPut, "/api/v2/accounts/"+knownID, validBody())
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Delete", func() {
		It("returns 204 when a record was removed", func() {
			svc.deleteFn = func(context.Context, string) (bool, error) { return true, nil }

			w := doJSON(router, http.MethodDelete, "/api/v2/accounts/"+knownID, nil)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("returns 404 when nothing was removed", func() {
			w := doJSON(router, http.MethodDelete, "/api/v2/accounts/"+knownID, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
