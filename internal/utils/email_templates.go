package utils

import (
	"fmt"
	"strings"

	"pawhaven_back_end/internal/models"
)

// orDefault remplace un champ de profil absent par la mention attendue
// par la boutique ("Not provided")
func orDefault(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not provided"
	}
	return value
}

// OrderTotal calcule le total de la commande : somme prix × quantité
func OrderTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// GenerateOrderEmailHTML génère le récapitulatif de commande envoyé au gérant
func GenerateOrderEmailHTML(items []models.CartItem, userEmail string, profile models.UserProfile) string {
	itemsHTML := ""
	for _, item := range items {
		itemsHTML += fmt.Sprintf(`
        <li>
          %s - Quantity: %d - Price: ₹%.2f
        </li>`, item.Product.Name, item.Quantity, item.Product.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
      <h2>New Order Received</h2>
      <h3>Customer Details:</h3>
      <p>Name: %s</p>
      <p>Email: %s</p>
      <p>Phone: %s</p>
      <p>Shipping Address:</p>
      <p>%s</p>
      <p>%s, %s %s</p>

      <h3>Order Details:</h3>
      <ul>%s
      </ul>
      <p><strong>Total: ₹%.2f</strong></p>`,
		orDefault(profile.FullName),
		userEmail,
		orDefault(profile.Phone),
		orDefault(profile.Address),
		profile.City, profile.State, profile.ZipCode,
		itemsHTML,
		OrderTotal(items))
}

// GenerateAdoptionEmailHTML génère le récapitulatif d'une demande d'adoption
func GenerateAdoptionEmailHTML(app models.AdoptionApplication, pet models.Pet) string {
	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	return fmt.Sprintf(`
      <h2>New Adoption Application Received</h2>

      <h3>Pet Details:</h3>
      <p>Name: %s</p>
      <p>Species: %s</p>
      <p>Breed: %s</p>

      <h3>Applicant Information:</h3>
      <p>Name: %s %s</p>
      <p>Email: %s</p>
      <p>Phone: %s</p>
      <p>Address: %s, %s, %s %s</p>

      <h3>Home Information:</h3>
      <p>Housing Type: %s</p>
      <p>Own/Rent: %s</p>
      <p>Has Yard: %s</p>
      <p>Has Children: %s</p>

      <h3>Experience:</h3>
      <p>Previous Pet Experience: %s</p>
      <p>Hours Pet Will Be Alone: %s</p>
      <p>Exercise Plan: %s</p>

      <h3>References:</h3>
      <p>Name: %s</p>
      <p>Phone: %s</p>
      <p>Relationship: %s</p>`,
		pet.Name, pet.Species, pet.Breed,
		app.PersonalInfo.FirstName, app.PersonalInfo.LastName,
		app.PersonalInfo.Email,
		app.PersonalInfo.Phone,
		app.PersonalInfo.Address, app.PersonalInfo.City, app.PersonalInfo.State, app.PersonalInfo.ZipCode,
		app.HomeInfo.Housing,
		app.HomeInfo.OwnRent,
		yesNo(app.HomeInfo.HasYard),
		yesNo(app.HomeInfo.HasChildren),
		app.Experience.PetExperience,
		app.Experience.HoursAlone,
		app.Experience.ExercisePlan,
		app.ReferenceInfo.RefName,
		app.ReferenceInfo.RefPhone,
		app.ReferenceInfo.RefRelationship)
}
