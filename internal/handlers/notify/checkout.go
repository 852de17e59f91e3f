package notify

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawhaven_back_end/internal/models"
	"pawhaven_back_end/internal/utils"
)

// SendOrderEmail traite un checkout : validation du panier, récapitulatif
// HTML envoyé au gérant, puis purge des lignes panier de l'utilisateur.
//
// POST /functions/send-order-email
func (n *Notifier) SendOrderEmail(c *gin.Context) {
	setCORSHeaders(c)

	var req struct {
		CartItems   []models.CartItem  `json:"cartItems"`
		UserEmail   string             `json:"userEmail"`
		UserProfile models.UserProfile `json:"userProfile"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart items"})
		return
	}

	if len(req.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart items"})
		return
	}

	userID := req.CartItems[0].UserID
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	cfg, ok := loadMailConfig()
	if !ok {
		log.Println("❌ Configuration mail manquante (EMAIL_USER / EMAIL_PASS / OWNER_EMAIL)")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email configuration is missing. Please check environment variables."})
		return
	}

	html := utils.GenerateOrderEmailHTML(req.CartItems, req.UserEmail, req.UserProfile)

	if err := n.Mailer.Send(cfg.EmailUser, cfg.OwnerEmail, "New Order Received", html); err != nil {
		log.Printf("❌ Erreur envoi e-mail commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send order email"})
		return
	}

	// L'e-mail est déjà parti : si la purge échoue, un retry du client
	// renverra un second e-mail. Comportement assumé, pas de compensation.
	if err := n.Carts.DeleteAll(c.Request.Context(), userID); err != nil {
		log.Printf("❌ Erreur purge panier (user %s): %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order processed successfully"})
}
