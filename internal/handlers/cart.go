package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pawhaven_back_end/internal/cart"
	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
)

// CartStore est la table cart_items distante ; remplacé par un fake dans les tests
var CartStore cart.Store = cart.NewScyllaStore()

// loadCart reconstruit la copie mémoire du panier pour la requête courante.
// La base reste la source de vérité : toute divergence laissée par une
// requête interrompue est réconciliée ici.
func loadCart(c *gin.Context) (*cart.Cart, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return nil, false
	}

	cc := cart.New(CartStore, userID)
	cc.Load(c.Request.Context())
	return cc, true
}

// 🟢 GET /api/cart
func GetCart(c *gin.Context) {
	cc, ok := loadCart(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": cc.Items(),
		"total": cc.Total(),
	})
}

// 🟢 POST /api/cart/add
func AddToCart(c *gin.Context) {
	cc, ok := loadCart(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	pid, err := uuid.Parse(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	// 🧩 Récupération du produit depuis le catalogue
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var p models.Product
	err = session.Query(`SELECT product_id, name, description, price, category, image_urls, tags, created_at, updated_at
		FROM products WHERE product_id = ?`, gocql.UUID(pid)).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURLs, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	cc.Add(c.Request.Context(), p.Snapshot())

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   cc.Items(),
		"total":   cc.Total(),
	})
}

// 🔁 PATCH /api/cart/quantity
func UpdateCartQuantity(c *gin.Context) {
	cc, ok := loadCart(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	cc.UpdateQuantity(c.Request.Context(), input.ProductID, input.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"items": cc.Items(),
		"total": cc.Total(),
	})
}

// ❌ DELETE /api/cart/:productId
func RemoveFromCart(c *gin.Context) {
	cc, ok := loadCart(c)
	if !ok {
		return
	}

	cc.RemoveItem(c.Request.Context(), c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   cc.Items(),
		"total":   cc.Total(),
	})
}

// 🧹 DELETE /api/cart
func ClearCart(c *gin.Context) {
	cc, ok := loadCart(c)
	if !ok {
		return
	}

	cc.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
		"items":   cc.Items(),
	})
}
