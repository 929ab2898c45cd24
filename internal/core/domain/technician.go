package domain

import "time"

type Technician struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (t *Technician) Validate() error {
	if t.Name == "" {
		return ErrMissingInput
	}
	return nil
}

type TechnicianPatch struct {
	Name *string
}

func (p TechnicianPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrMissingInput
	}
	return nil
}

func (p TechnicianPatch) Fields() []string {
	if p.Name != nil {
		return []string{"name"}
	}
	return nil
}
