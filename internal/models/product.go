package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	Category    string     `json:"category" db:"category"`
	ImageURLs   []string   `json:"image_urls" db:"image_urls"`
	Tags        []string   `json:"tags" db:"tags"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// Snapshot construit la copie dénormalisée stockée dans le panier
func (p Product) Snapshot() CartProduct {
	imageURL := ""
	if len(p.ImageURLs) > 0 {
		imageURL = p.ImageURLs[0]
	}
	return CartProduct{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    imageURL,
	}
}
