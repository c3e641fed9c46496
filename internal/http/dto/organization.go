package dto

import (
	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
	"github.com/LuizHNR/NebuloHub-Mongo/internal/service"
)

// OrganizationRequest is used for both create and update. An omitted
// foundedOn defaults to today on create and keeps the stored date on update.
type OrganizationRequest struct {
	TaxID       string   `json:"taxId" binding:"required,len=14,digits" jsonschema:"minLength=14,maxLength=14,pattern=^[0-9]+$"`
	Video       string   `json:"video,omitempty" binding:"max=2048"`
	Name        string   `json:"name" binding:"required,max=250" jsonschema:"maxLength=250"`
	Description string   `json:"description" binding:"required"`
	Website     string   `json:"website,omitempty" binding:"max=2048"`
	FoundedOn   Date     `json:"foundedOn,omitempty"`
	Skills      []string `json:"skills,omitempty" binding:"omitempty,dive,max=100"`
	OwnerID     string   `json:"ownerId" binding:"required"`
}

func (r OrganizationRequest) Input() service.OrganizationInput {
	return service.OrganizationInput{
		TaxID:       r.TaxID,
		Video:       r.Video,
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		FoundedOn:   r.FoundedOn.Time,
		Skills:      r.Skills,
		OwnerID:     r.OwnerID,
	}
}

type OrganizationResponse struct {
	ID          string   `json:"id"`
	TaxID       string   `json:"taxId"`
	Video       string   `json:"video"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	FoundedOn   Date     `json:"foundedOn"`
	Skills      []string `json:"skills"`
	OwnerID     string   `json:"ownerId"`
	Links       Links    `json:"links"`
}

func ToOrganizationResponse(o *model.Organization, basePath string) OrganizationResponse {
	skills := o.Skills
	if skills == nil {
		skills = []string{}
	}
	return OrganizationResponse{
		ID:          o.GetID(),
		TaxID:       o.TaxID,
		Video:       o.Video,
		Name:        o.Name,
		Description: o.Description,
		Website:     o.Website,
		FoundedOn:   NewDate(o.FoundedOn),
		Skills:      skills,
		OwnerID:     o.OwnerID,
		Links:       Links{Self: basePath + "/" + o.GetID()},
	}
}

func ToOrganizationResponses(orgs []*model.Organization, basePath string) []OrganizationResponse {
	out := make([]OrganizationResponse, len(orgs))
	for i, o := range orgs {
		out[i] = ToOrganizationResponse(o, basePath)
	}
	return out
}
