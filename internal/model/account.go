package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account is a registered user. Secret holds a password hash, never plaintext.
type Account struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NationalID string             `bson:"nationalId" json:"nationalId"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Secret     string             `bson:"secret" json:"secret"`
	Role       Role               `bson:"role" json:"role"`
	Phone      *int64             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// AccountUpdate carries every mutable field. NationalID is fixed at creation.
type AccountUpdate struct {
	Name   string
	Email  string
	Secret string
	Role   Role
	Phone  *int64
}

func NewAccount(nationalID, name, email, secret string, role Role, phone *int64) *Account {
	return &Account{
		NationalID: nationalID,
		Name:       name,
		Email:      email,
		Secret:     secret,
		Role:       role,
		Phone:      copyPhone(phone),
	}
}

func (a *Account) Apply(u AccountUpdate) {
	a.Name = u.Name
	a.Email = u.Email
	a.Secret = u.Secret
	a.Role = u.Role
	a.Phone = copyPhone(u.Phone)
}

func (a *Account) Kind() Kind { return KindAccount }

func (a *Account) GetID() string { return hexOf(a.ID) }

func (a *Account) SetID(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	a.ID = oid
	return nil
}

func copyPhone(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
