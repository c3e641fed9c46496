package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type AccountHandler struct {
	accountService service.AccountService
	publicURL      string
}

func NewAccountHandler(accountService service.AccountService, publicURL string) *AccountHandler {
	return &AccountHandler{accountService: accountService, publicURL: publicURL}
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, "create account")
		return
	}

	resp := dto.ToAccountResponse(account, collectionURL(c, h.publicURL))
	c.Header("Location", resp.Links.Self)
	c.JSON(http.StatusCreated, resp)
}

func (h *AccountHandler) List(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		respondError(c, err, "list accounts")
		return
	}

	items := dto.ToAccountResponses(accounts, collectionURL(c, h.publicURL))
	c.JSON(http.StatusOK, dto.NewPageResponse(q, items))
}

func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.accountService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account, collectionURL(c, h.publicURL)))
}

func (h *AccountHandler) Update(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), c.Param("id"), req.Input())
	if err != nil {
		respondError(c, err, "update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account, collectionURL(c, h.publicURL)))
}

func (h *AccountHandler) Delete(c *gin.Context) {
	deleted, err := h.accountService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "delete account")
		return
	}
	if !deleted {
		respondError(c, service.ErrNotFound, "delete account")
		return
	}

	c.Status(http.StatusNoContent)
}
