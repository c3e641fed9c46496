package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Organization struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaxID       string             `bson:"taxId" json:"taxId"`
	Video       string             `bson:"video" json:"video"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Website     string             `bson:"website" json:"website"`
	FoundedOn   time.Time          `bson:"foundedOn" json:"foundedOn"`
	Skills      []string           `bson:"skills" json:"skills"`
	OwnerID     string             `bson:"ownerId" json:"ownerId"`
}

type OrganizationUpdate struct {
	TaxID       string
	Video       string
	Name        string
	Description string
	Website     string
	FoundedOn   time.Time
	Skills      []string
	OwnerID     string
}

// NewOrganization stores foundedOn truncated to its date.
func NewOrganization(taxID, video, name, description, website string, foundedOn time.Time, skills []string, ownerID string) *Organization {
	o := &Organization{}
	o.Apply(OrganizationUpdate{
		TaxID:       taxID,
		Video:       video,
		Name:        name,
		Description: description,
		Website:     website,
		FoundedOn:   foundedOn,
		Skills:      skills,
		OwnerID:     ownerID,
	})
	return o
}

func (o *Organization) Apply(u OrganizationUpdate) {
	o.TaxID = u.TaxID
	o.Video = u.Video
	o.Name = u.Name
	o.Description = u.Description
	o.Website = u.Website
	o.FoundedOn = DateOf(u.FoundedOn)
	o.Skills = copySkills(u.Skills)
	o.OwnerID = u.OwnerID
}

func (o *Organization) Kind() Kind { return KindOrganization }

func (o *Organization) GetID() string { return hexOf(o.ID) }

func (o *Organization) SetID(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	o.ID = oid
	return nil
}

// copySkills keeps order and duplicates; nil becomes empty so documents
// always carry an array.
func copySkills(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
