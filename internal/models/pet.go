package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Pet struct {
	ID          gocql.UUID `json:"id" db:"pet_id"`
	Name        string     `json:"name" db:"name"`
	Species     string     `json:"species" db:"species"`
	Breed       string     `json:"breed" db:"breed"`
	AgeMonths   int        `json:"age_months" db:"age_months"`
	Description string     `json:"description" db:"description"`
	ImageURLs   []string   `json:"image_urls" db:"image_urls"`
	Adopted     bool       `json:"adopted" db:"adopted"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}
