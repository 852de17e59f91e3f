package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawhaven_back_end/internal/cache"
	"pawhaven_back_end/internal/database"
)

// GetProfile renvoie le profil de livraison de l'utilisateur connecté.
// Le checkout lit ce profil avant d'envoyer la commande.
func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	profile, err := cache.GetProfileFromCache(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile crée ou met à jour le profil de livraison
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		ZipCode  string `json:"zipCode"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	stmt := database.GetPreparedUpsertProfile()
	if stmt == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := stmt.Bind(userID, input.FullName, input.Phone, input.Address,
		input.City, input.State, input.ZipCode, time.Now()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour profil: " + err.Error()})
		return
	}

	cache.InvalidateProfileCache(userID)

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour"})
}
