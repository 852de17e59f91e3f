package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
)

// ListApplications renvoie toutes les demandes d'adoption pour le panneau admin
func ListApplications(c *gin.Context) {
	session, err := database.GetAdoptionsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT application_id, user_id, pet_id, personal_info, home_info, experience, reference_info, status, created_at
		FROM applications`).Iter()

	var apps []models.AdoptionApplication
	var (
		appID                                 gocql.UUID
		userID, petID                         string
		personal, home, experience, reference string
		status                                string
		createdAt                             time.Time
	)

	for iter.Scan(&appID, &userID, &petID, &personal, &home, &experience, &reference, &status, &createdAt) {
		app := models.AdoptionApplication{
			ID:     appID,
			UserID: userID,
			PetID:  petID,
			Status: status,
		}
		if err := app.DecodeSections(personal, home, experience, reference); err != nil {
			log.Printf("⚠️ Demande %s illisible: %v", appID, err)
			continue
		}
		created := createdAt
		app.CreatedAt = &created
		apps = append(apps, app)
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture demandes"})
		return
	}

	if apps == nil {
		apps = []models.AdoptionApplication{}
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus applique la décision de l'admin (approved/rejected).
// Mise à jour directe de la colonne status, sans workflow ni piste d'audit.
func UpdateApplicationStatus(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID demande invalide"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !models.IsValidStatus(input.Status) || input.Status == models.ApplicationPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut invalide (attendu: approved ou rejected)"})
		return
	}

	session, err := database.GetAdoptionsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`UPDATE applications SET status = ? WHERE application_id = ?`,
		input.Status, gocql.UUID(appID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut: " + err.Error()})
		return
	}

	// Répercute le statut dans la vue par utilisateur
	var ownerID string
	if err := session.Query(`SELECT user_id FROM applications WHERE application_id = ?`,
		gocql.UUID(appID)).Scan(&ownerID); err == nil {
		if err := session.Query(`UPDATE applications_by_user SET status = ? WHERE user_id = ? AND application_id = ?`,
			input.Status, ownerID, gocql.UUID(appID)).Exec(); err != nil {
			log.Printf("⚠️ Erreur mise à jour applications_by_user: %v", err)
		}
	}

	log.Printf("✅ Demande %s → %s", appID, input.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "status": input.Status})
}
