package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
	"pawhaven_back_end/internal/utils"
)

// Register crée un compte client local
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	// ⚡ Vérifier si l'email existe déjà
	var existingID gocql.UUID
	stmt := database.GetPreparedGetUserByEmail()
	if stmt == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}
	if err := stmt.Bind(input.Email).Scan(&existingID); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Un compte avec cet email existe déjà",
			"email": input.Email,
		})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hash mot de passe"})
		return
	}

	userID := gocql.TimeUUID()
	now := time.Now()

	insertUser := database.GetPreparedInsertUser()
	insertByEmail := database.GetPreparedInsertUserByEmail()
	if insertUser == nil || insertByEmail == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := insertUser.Bind(userID, input.Email, hashedPassword, input.Name, "customer", now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur: " + err.Error()})
		return
	}

	if err := insertByEmail.Bind(input.Email, userID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur indexation email: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    userID.String(),
		"email": input.Email,
		"role":  "customer",
	})
}

// Login authentifie un client et renvoie un JWT
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	byEmail := database.GetPreparedGetUserByEmail()
	byID := database.GetPreparedGetUserByID()
	if byEmail == nil || byID == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var userID gocql.UUID
	if err := byEmail.Bind(input.Email).Scan(&userID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	var email, password, name, role string
	if err := byID.Bind(userID).Scan(&email, &password, &name, &role); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mot de passe incorrect"})
		return
	}

	user := models.User{ID: userID.String(), Name: name, Email: email, Role: role}
	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   user.Role,
	})
}
