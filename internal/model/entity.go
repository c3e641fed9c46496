package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind names an aggregate type. Collections are resolved from it.
type Kind string

const (
	KindAccount      Kind = "account"
	KindOrganization Kind = "organization"
	KindRating       Kind = "rating"
)

// Kinds lists every registered aggregate kind.
func Kinds() []Kind {
	return []Kind{KindAccount, KindOrganization, KindRating}
}

// Entity is implemented by pointers to the persisted aggregates.
type Entity interface {
	Kind() Kind
	// GetID returns the 24-hex identifier, or "" before the first insert.
	GetID() string
	SetID(id string) error
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hexOf(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func parseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return oid, nil
}
