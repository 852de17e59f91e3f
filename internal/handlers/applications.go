package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
)

// SubmitApplication enregistre une demande d'adoption (statut "pending")
func SubmitApplication(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		PetID         string               `json:"pet_id" binding:"required"`
		PersonalInfo  models.PersonalInfo  `json:"personal_info"`
		HomeInfo      models.HomeInfo      `json:"home_info"`
		Experience    models.Experience    `json:"experience"`
		ReferenceInfo models.ReferenceInfo `json:"reference_info"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if input.PersonalInfo.Email == "" || input.PersonalInfo.FirstName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les informations personnelles sont incomplètes"})
		return
	}

	app := models.AdoptionApplication{
		ID:            gocql.TimeUUID(),
		UserID:        userID,
		PetID:         input.PetID,
		PersonalInfo:  input.PersonalInfo,
		HomeInfo:      input.HomeInfo,
		Experience:    input.Experience,
		ReferenceInfo: input.ReferenceInfo,
		Status:        models.ApplicationPending,
	}

	personal, home, experience, reference, err := app.EncodeSections()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sérialisation demande"})
		return
	}

	session, err := database.GetAdoptionsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	now := time.Now()
	query := `INSERT INTO applications (application_id, user_id, pet_id, personal_info, home_info, experience, reference_info, status, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, app.ID, app.UserID, app.PetID,
		personal, home, experience, reference, app.Status, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement demande: " + err.Error()})
		return
	}

	// ✅ Indexe aussi dans applications_by_user pour "mes demandes"
	if err := session.Query(`INSERT INTO applications_by_user (user_id, application_id, pet_id, personal_info, home_info, experience, reference_info, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.UserID, app.ID, app.PetID, personal, home, experience, reference, app.Status, now).Exec(); err != nil {
		// Log l'erreur mais ne bloque pas la soumission
		log.Printf("⚠️ Erreur indexation applications_by_user: %v", err)
	}

	app.CreatedAt = &now
	c.JSON(http.StatusCreated, app)
}

// GetMyApplications liste les demandes d'adoption de l'utilisateur connecté
func GetMyApplications(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	session, err := database.GetAdoptionsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT application_id, pet_id, personal_info, home_info, experience, reference_info, status, created_at
		FROM applications_by_user WHERE user_id = ?`, userID).Iter()

	var apps []models.AdoptionApplication
	var (
		appID                                 gocql.UUID
		petID                                 string
		personal, home, experience, reference string
		status                                string
		createdAt                             time.Time
	)

	for iter.Scan(&appID, &petID, &personal, &home, &experience, &reference, &status, &createdAt) {
		app := models.AdoptionApplication{
			ID:     appID,
			UserID: userID,
			PetID:  petID,
			Status: status,
		}
		if err := app.DecodeSections(personal, home, experience, reference); err != nil {
			// Colonne corrompue : on saute la ligne, le reste de la liste s'affiche
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
