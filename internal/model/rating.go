package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Rating struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Score          int                `bson:"score" json:"score"`
	AccountID      string             `bson:"accountId" json:"accountId"`
	Comment        string             `bson:"comment" json:"comment"`
	CreatedOn      time.Time          `bson:"createdOn" json:"createdOn"`
	OrganizationID string             `bson:"organizationId" json:"organizationId"`
}

type RatingUpdate struct {
	Score          int
	AccountID      string
	Comment        string
	CreatedOn      time.Time
	OrganizationID string
}

func NewRating(score int, accountID, comment string, createdOn time.Time, organizationID string) *Rating {
	r := &Rating{}
	r.Apply(RatingUpdate{
		Score:          score,
		AccountID:      accountID,
		Comment:        comment,
		CreatedOn:      createdOn,
		OrganizationID: organizationID,
	})
	return r
}

func (r *Rating) Apply(u RatingUpdate) {
	r.Score = u.Score
	r.AccountID = u.AccountID
	r.Comment = u.Comment
	r.CreatedOn = DateOf(u.CreatedOn)
	r.OrganizationID = u.OrganizationID
}

func (r *Rating) Kind() Kind { return KindRating }

func (r *Rating) GetID() string { return hexOf(r.ID) }

func (r *Rating) SetID(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	r.ID = oid
	return nil
}
