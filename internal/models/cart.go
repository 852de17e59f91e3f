package models

import (
	"encoding/json"
	"errors"
)

// CartProduct est la copie dénormalisée du produit au moment de l'ajout au panier.
// Les changements de prix ultérieurs n'affectent pas les articles déjà présents.
type CartProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type CartItem struct {
	ItemID   string      `json:"id"`
	UserID   string      `json:"user_id"`
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// EncodeSnapshot sérialise la copie produit pour la colonne product_snapshot
func EncodeSnapshot(p CartProduct) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSnapshot désérialise et valide la copie produit stockée en base.
// On ne fait pas confiance au contenu de la colonne : un snapshot corrompu
// est rejeté plutôt que propagé jusqu'au calcul du total.
func DecodeSnapshot(raw string) (CartProduct, error) {
	var p CartProduct
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return CartProduct{}, err
	}
	if p.ID == "" {
		return CartProduct{}, errors.New("snapshot produit sans identifiant")
	}
	if p.Price < 0 {
		return CartProduct{}, errors.New("snapshot produit avec prix négatif")
	}
	return p, nil
}
