package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"pawhaven_back_end/internal/models"
)

func testItems() []models.CartItem {
	return []models.CartItem{
		{Product: models.CartProduct{ID: "p1", Name: "Croquettes saumon 2kg", Price: 24.90}, Quantity: 2},
		{Product: models.CartProduct{ID: "p2", Name: "Laisse réglable", Price: 12.50}, Quantity: 1},
	}
}

func TestOrderTotal(t *testing.T) {
	assert.InDelta(t, 62.30, OrderTotal(testItems()), 0.0001)
	assert.Equal(t, 0.0, OrderTotal(nil))
}

func TestOrderEmailContainsItemsAndTotal(t *testing.T) {
	profile := models.UserProfile{
		FullName: "Claire Dupont",
		Phone:    "0470 12 34 56",
		Address:  "12 rue des Tilleuls",
		City:     "Namur",
		State:    "Wallonie",
		ZipCode:  "5000",
	}

	html := GenerateOrderEmailHTML(testItems(), "claire@example.com", profile)

	assert.Contains(t, html, "New Order Received")
	assert.Contains(t, html, "Croquettes saumon 2kg")
	assert.Contains(t, html, "Quantity: 2")
	assert.Contains(t, html, fmt.Sprintf("Total: ₹%.2f", 62.30))
	assert.Contains(t, html, "Claire Dupont")
	assert.Contains(t, html, "claire@example.com")
	assert.NotContains(t, html, "Not provided")
}

func TestOrderEmailFallsBackToNotProvided(t *testing.T) {
	html := GenerateOrderEmailHTML(testItems(), "claire@example.com", models.UserProfile{})

	assert.Contains(t, html, "Name: Not provided")
	assert.Contains(t, html, "Phone: Not provided")
}

func TestAdoptionEmailRendersAllSections(t *testing.T) {
	app := models.AdoptionApplication{
		PersonalInfo: models.PersonalInfo{
			FirstName: "Claire", LastName: "Dupont",
			Email: "claire@example.com", Phone: "0470 12 34 56",
			Address: "12 rue des Tilleuls", City: "Namur", State: "Wallonie", ZipCode: "5000",
		},
		HomeInfo:      models.HomeInfo{Housing: "house", OwnRent: "own", HasYard: true},
		Experience:    models.Experience{PetExperience: "Deux chiens", HoursAlone: "4", ExercisePlan: "Promenades"},
		ReferenceInfo: models.ReferenceInfo{RefName: "Marc Lejeune", RefPhone: "0471 98 76 54", RefRelationship: "Vétérinaire"},
	}
	pet := models.Pet{Name: "Biscotte", Species: "Chien", Breed: "Border Collie"}

	html := GenerateAdoptionEmailHTML(app, pet)

	assert.Contains(t, html, "New Adoption Application Received")
	assert.Contains(t, html, "Name: Biscotte")
	assert.Contains(t, html, "Claire Dupont")
	assert.Contains(t, html, "Has Yard: Yes")
	assert.Contains(t, html, "Has Children: No")
	assert.Contains(t, html, "Relationship: Vétérinaire")
}
