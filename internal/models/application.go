package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts possibles d'une demande d'adoption.
// Le statut n'est modifié que par un admin et ne revient jamais en arrière.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

type HomeInfo struct {
	Housing     string `json:"housing"`
	OwnRent     string `json:"ownRent"`
	HasYard     bool   `json:"hasYard"`
	HasChildren bool   `json:"hasChildren"`
}

type Experience struct {
	PetExperience string `json:"petExperience"`
	HoursAlone    string `json:"hoursAlone"`
	ExercisePlan  string `json:"exercisePlan"`
}

type ReferenceInfo struct {
	RefName         string `json:"refName"`
	RefPhone        string `json:"refPhone"`
	RefRelationship string `json:"refRelationship"`
}

type AdoptionApplication struct {
	ID            gocql.UUID    `json:"id" db:"application_id"`
	UserID        string        `json:"user_id" db:"user_id"`
	PetID         string        `json:"pet_id" db:"pet_id"`
	PersonalInfo  PersonalInfo  `json:"personal_info"`
	HomeInfo      HomeInfo      `json:"home_info"`
	Experience    Experience    `json:"experience"`
	ReferenceInfo ReferenceInfo `json:"reference_info"`
	Status        string        `json:"status" db:"status"`
	CreatedAt     *time.Time    `json:"created_at" db:"created_at"`
}

// IsValidStatus vérifie qu'un statut fourni par l'admin est connu
func IsValidStatus(s string) bool {
	return s == ApplicationPending || s == ApplicationApproved || s == ApplicationRejected
}
