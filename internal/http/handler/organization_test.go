package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/handler"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

var _ = Describe("OrganizationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockOrganizationService
		got    service.OrganizationInput
	)

	validBody := func() map[string]any {
		return map[string]any{
			"taxId":       "12345678000199",
			"name":        "Nebulo",
			"description": "Startup hub",
			"foundedOn":   "2021-06-15",
			"skills":      []string{"go", "go"},
			"ownerId":     knownID,
		}
	}

	BeforeEach(func() {
		router = gin.New()
		got = service.OrganizationInput{}
		svc = &mockOrganizationService{
			createFn: func(_ context.Context, in service.OrganizationInput) (*model.Organization, error) {
				got = in
				o := model.NewOrganization(in.TaxID, in.Video, in.Name, in.Description, in.Website, in.FoundedOn, in.Skills, in.OwnerID)
				Expect(o.SetID(knownID)).To(Succeed())
				return o, nil
			},
		}
		mount(router, "/api/v2/organizations", handler.NewOrganizationHandler(svc, publicURL))
	})

	It("parses the founded date and keeps duplicate skills", func() {
		w := doJSON(router, http.MethodPost, "/api/v2/organizations", validBody())

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got.FoundedOn).To(Equal(time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)))
		Expect(got.Skills).To(Equal([]string{"go", "go"}))

		resp := decode(w)
		Expect(resp["foundedOn"]).To(Equal("2021-06-15"))
		Expect(resp["links"]).To(HaveKeyWithValue("self", publicURL+"/api/v2/organizations/"+knownID))
	})

	It("leaves an omitted founded date zero", func() {
		body := validBody()
		delete(body, "foundedOn")

		w := doJSON(router, http.MethodPost, "/api/v2/organizations", body)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got.FoundedOn.IsZero()).To(BeTrue())
	})

	It("returns an empty skills array rather than null", func() {
		body := validBody()
		delete(body, "skills")

		w := doJSON(router, http.MethodPost, "/api/v2/organizations", body)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(decode(w)["skills"]).To(Equal([]any{}))
	})

	DescribeTable("rejects invalid bodies with 400",
		func(field string, value any) {
			body := validBody()
			body[field] = value

			w := doJSON(router, http.MethodPost, "/api/v2/organizations", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		},
		Entry("13-digit tax id", "taxId", "1234567800019"),
		Entry("formatted tax id", "taxId", "12.345.678/0001-9"),
		Entry("missing description", "description", ""),
		Entry("missing owner", "ownerId", ""),
		Entry("non-ISO date", "foundedOn", "15/06/2021"),
	)

	It("derives self links from the request host without a public URL", func() {
		router = gin.New()
		mount(router, "/api/v2/organizations", handler.NewOrganizationHandler(svc, ""))

		w := doJSON(router, http.MethodPost, "/api/v2/organizations", validBody())

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(decode(w)["links"]).To(HaveKeyWithValue("self", "http://example.com/api/v2/organizations/"+knownID))
	})
})
