package dto

import (
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

// RatingRequest is used for both create and update. An omitted createdOn
// defaults to today on create and keeps the stored date on update.
type RatingRequest struct {
	Score          int    `json:"score"`
	AccountID      string `json:"accountId" binding:"required"`
	Comment        string `json:"comment,omitempty" binding:"max=2000"`
	CreatedOn      Date   `json:"createdOn,omitempty"`
	OrganizationID string `json:"organizationId" binding:"required"`
}

func (r RatingRequest) Input() service.RatingInput {
	return service.RatingInput{
		Score:          r.Score,
		AccountID:      r.AccountID,
		Comment:        r.Comment,
		CreatedOn:      r.CreatedOn.Time,
		OrganizationID: r.OrganizationID,
	}
}

type RatingResponse struct {
	ID             string `json:"id"`
	Score          int    `json:"score"`
	AccountID      string `json:"accountId"`
	Comment        string `json:"comment"`
	CreatedOn      Date   `json:"createdOn"`
	OrganizationID string `json:"organizationId"`
	Links          Links  `json:"links"`
}

func ToRatingResponse(r *model.Rating, basePath string) RatingResponse {
	return RatingResponse{
		ID:             r.GetID(),
		Score:          r.Score,
		AccountID:      r.AccountID,
		Comment:        r.Comment,
		CreatedOn:      NewDate(r.CreatedOn),
		OrganizationID: r.OrganizationID,
		Links:          Links{Self: basePath + "/" + r.GetID()},
	}
}

func ToRatingResponses(ratings []*model.Rating, basePath string) []RatingResponse {
	out := make([]RatingResponse, len(ratings))
	for i, r := range ratings {
		out[i] = ToRatingResponse(r, basePath)
	}
	return out
}
