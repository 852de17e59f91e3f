package notify

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawhaven_back_end/internal/models"
	"pawhaven_back_end/internal/utils"
)

// SendAdoptionEmail transmet une demande d'adoption au gérant du refuge.
// Même forme que le checkout, sans effet de bord en base.
//
// POST /functions/send-adoption-email
func (n *Notifier) SendAdoptionEmail(c *gin.Context) {
	setCORSHeaders(c)

	var req struct {
		ApplicationData models.AdoptionApplication `json:"applicationData"`
		UserEmail       string                     `json:"userEmail"`
		PetDetails      models.Pet                 `json:"petDetails"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application data"})
		return
	}

	cfg, ok := loadMailConfig()
	if !ok {
		log.Println("❌ Configuration mail manquante (EMAIL_USER / EMAIL_PASS / OWNER_EMAIL)")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email configuration is missing"})
		return
	}

	html := utils.GenerateAdoptionEmailHTML(req.ApplicationData, req.PetDetails)
	subject := "New Adoption Application - " + req.PetDetails.Name

	if err := n.Mailer.Send(cfg.EmailUser, cfg.OwnerEmail, subject, html); err != nil {
		log.Printf("❌ Erreur envoi e-mail adoption: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send adoption email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully"})
}
