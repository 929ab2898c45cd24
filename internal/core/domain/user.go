package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account holder. Business accounts carry a business name.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Role         string    `json:"role" bson:"role"`
	IsBusiness   bool      `json:"isBusiness" bson:"isBusiness"`
	BusinessName string    `json:"businessName,omitempty" bson:"businessName,omitempty"`
	Address      string    `json:"address" bson:"address"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Validate checks the invariants that must hold before a user is persisted.
func (u *User) Validate() error {
	if u.Name == "" || u.Email == "" || u.PasswordHash == "" || u.Address == "" {
		return ErrMissingInput
	}
	if u.IsBusiness && u.BusinessName == "" {
		return ErrBusinessNameRequired
	}
	if !ValidRole(u.Role) {
		return NewValidationError("role must be one of: user admin")
	}
	return nil
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
	IsBusiness   *bool
	BusinessName *string
	Address      *string
}

// Fields lists the changed attributes; a password change is reported without its value.
func (p UserPatch) Fields() []string {
	var f []string
	if p.Name != nil {
		f = append(f, "name")
	}
	if p.Email != nil {
		f = append(f, "email")
	}
	if p.PasswordHash != nil {
		f = append(f, "password")
	}
	if p.Role != nil {
		f = append(f, "role")
	}
	if p.IsBusiness != nil {
		f = append(f, "isBusiness")
	}
	if p.BusinessName != nil {
		f = append(f, "businessName")
	}
	if p.Address != nil {
		f = append(f, "address")
	}
	return f
}

// ApplyTo returns u with the patch merged in.
func (p UserPatch) ApplyTo(u User) User {
	setIfPresent(&u.Name, p.Name)
	setIfPresent(&u.Email, p.Email)
	setIfPresent(&u.PasswordHash, p.PasswordHash)
	setIfPresent(&u.Role, p.Role)
	setIfPresent(&u.IsBusiness, p.IsBusiness)
	setIfPresent(&u.BusinessName, p.BusinessName)
	setIfPresent(&u.Address, p.Address)
	return u
}

func setIfPresent[V any](dst *V, v *V) {
	if v != nil {
		*dst = *v
	}
}
