package domain

import (
	"time"
)

type User struct {
	ID                int
	Name              string `validate:"required,min=2,max=100"`
	Email             string `validate:"required,email,max=255"`
	EncryptedPassword string `validate:"required"`
	Age               *int   `validate:"omitempty,gte=0,lte=150"`
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserPatch carries a partial update. A nil field means "keep the current
// value"; only non-nil fields are merged into the entity.
type UserPatch struct {
	Name   *string
	Email  *string
	Age    *int
	Active *bool
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil && p.Active == nil
}

func (u *User) Merge(patch UserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Age != nil {
		u.Age = patch.Age
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
}
