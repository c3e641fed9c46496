package id

import "go.mongodb.org/mongo-driver/bson/primitive"

// ObjectIDLength is the number of hex characters in an entity identifier.
const ObjectIDLength = 24

// Valid reports whether s is a well-formed entity identifier.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Parse decodes a 24-hex identifier. Malformed input yields ok == false so
// callers can treat it the same as an absent record.
func Parse(s string) (primitive.ObjectID, bool) {
	if len(s) != ObjectIDLength {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// Canonical returns the lower-case spelling of a 24-hex identifier. Every
// backend and cache key uses this form, so "65A1..." and "65a1..." address the
// same document everywhere.
func Canonical(s string) (string, bool) {
	oid, ok := Parse(s)
	if !ok {
		return "", false
	}
	return oid.Hex(), true
}

// NewObjectID mints an identifier for backends that do not assign one natively.
func NewObjectID() string {
	return primitive.NewObjectID().Hex()
}
