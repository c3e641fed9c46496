package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type OrganizationHandler struct {
	organizationService service.OrganizationService
	publicURL           string
}

func NewOrganizationHandler(organizationService service.OrganizationService, publicURL string) *OrganizationHandler {
	return &OrganizationHandler{organizationService: organizationService, publicURL: publicURL}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	organization, err := h.organizationService.Create(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, "create organization")
		return
	}

	resp := dto.ToOrganizationResponse(organization, collectionURL(c, h.publicURL))
	c.Header("Location", resp.Links.Self)
	c.JSON(http.StatusCreated, resp)
}

func (h *OrganizationHandler) List(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	organizations, err := h.organizationService.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		respondError(c, err, "list organizations")
		return
	}

	items := dto.ToOrganizationResponses(organizations, collectionURL(c, h.publicURL))
	c.JSON(http.StatusOK, dto.NewPageResponse(q, items))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	organization, err := h.organizationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(organization, collectionURL(c, h.publicURL)))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	var req dto.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	organization, err := h.organizationService.Update(c.Request.Context(), c.Param("id"), req.Input())
	if err != nil {
		respondError(c, err, "update organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(organization, collectionURL(c, h.publicURL)))
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	deleted, err := h.organizationService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "delete organization")
		return
	}
	if !deleted {
		respondError(c, service.ErrNotFound, "delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}
