package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

type RatingHandler struct {
	ratingService service.RatingService
	publicURL     string
}

func NewRatingHandler(ratingService service.RatingService, publicURL string) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, publicURL: publicURL}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, "create rating")
		return
	}

	resp := dto.ToRatingResponse(rating, collectionURL(c, h.publicURL))
	c.Header("Location", resp.Links.Self)
	c.JSON(http.StatusCreated, resp)
}

func (h *RatingHandler) List(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	ratings, err := h.ratingService.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		respondError(c, err, "list ratings")
		return
	}

	items := dto.ToRatingResponses(ratings, collectionURL(c, h.publicURL))
	c.JSON(http.StatusOK, dto.NewPageResponse(q, items))
}

func (h *RatingHandler) Get(c *gin.Context) {
	rating, err := h.ratingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get rating")
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingResponse(rating, collectionURL(c, h.publicURL)))
}

func (h *RatingHandler) Update(c *gin.Context) {
	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rating, err := h.ratingService.Update(c.Request.Context(), c.Param("id"), req.Input())
	if err != nil {
		respondError(c, err, "update rating")
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingResponse(rating, collectionURL(c, h.publicURL)))
}

func (h *RatingHandler) Delete(c *gin.Context) {
	deleted, err := h.ratingService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "delete rating")
		return
	}
	if !deleted {
		respondError(c, service.ErrNotFound, "delete rating")
		return
	}

	c.Status(http.StatusNoContent)
}
