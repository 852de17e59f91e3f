package models

type User struct {
	ID       string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role,omitempty"`
}

// UserProfile alimente le checkout (nom, téléphone, adresse de livraison).
// Lecture seule pour le panier : seul l'utilisateur modifie son profil.
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}
