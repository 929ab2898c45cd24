package domain

import "time"

// Category groups knowledge base articles.
type Category string

const (
	CategoryHardware Category = "hardware"
	CategorySoftware Category = "software"
	CategoryNetwork  Category = "network"
)

func (c Category) Valid() bool {
	return c == CategoryHardware || c == CategorySoftware || c == CategoryNetwork
}

// KnowledgeBase is a troubleshooting article: ordered symptoms and ordered solution steps.
type KnowledgeBase struct {
	ID            string    `json:"id" bson:"id"`
	Title         string    `json:"title" bson:"title"`
	Symptoms      []string  `json:"symptoms" bson:"symptoms"`
	SolutionSteps []string  `json:"solutionSteps" bson:"solutionSteps"`
	Category      Category  `json:"category" bson:"category"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (k *KnowledgeBase) Validate() error {
	if k.Title == "" || len(k.Symptoms) == 0 || len(k.SolutionSteps) == 0 || k.Category == "" {
		return ErrMissingInput
	}
	if !k.Category.Valid() {
		return NewValidationError("category must be one of: hardware software network")
	}
	return nil
}

type KnowledgeBasePatch struct {
	Title         *string
	Symptoms      []string
	SolutionSteps []string
	Category      *Category
}

func (p KnowledgeBasePatch) Validate() error {
	if p.Category != nil && !p.Category.Valid() {
		return NewValidationError("category must be one of: hardware software network")
	}
	if p.Title != nil && *p.Title == "" {
		return ErrMissingInput
	}
	// A present but empty list would blank a required field.
	if (p.Symptoms != nil && len(p.Symptoms) == 0) || (p.SolutionSteps != nil && len(p.SolutionSteps) == 0) {
		return ErrMissingInput
	}
	return nil
}

func (p KnowledgeBasePatch) Fields() []string {
	var f []string
	if p.Title != nil {
		f = append(f, "title")
	}
	if p.Symptoms != nil {
		f = append(f, "symptoms")
	}
	if p.SolutionSteps != nil {
		f = append(f, "solutionSteps")
	}
	if p.Category != nil {
		f = append(f, "category")
	}
	return f
}
