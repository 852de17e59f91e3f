package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pawhaven_back_end/internal/cache"
	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
	"pawhaven_back_end/internal/services"
)

// GetAllProducts liste les produits de la boutique
func GetAllProducts(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "products:all"

	// ✅ Vérifie le cache Redis
	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT product_id, name, description, price, category, image_urls, tags, created_at, updated_at FROM products`).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURLs, &p.Tags, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	// ✅ Met en cache
	if jsonData, err := json.Marshal(products); err == nil {
		database.RedisClient.Set(ctx, cacheKey, jsonData, 10*time.Minute)
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct renvoie une fiche produit
func GetProduct(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

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

	c.JSON(http.StatusOK, p)
}

// SearchProducts recherche dans la boutique via Elasticsearch
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'q' requis"})
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// CreateProduct ajoute un produit à la boutique (admin)
func CreateProduct(c *gin.Context) {
	var p models.Product

	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	if p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix ne peut pas être négatif"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	query := `INSERT INTO products (product_id, name, description, price, category, image_urls, tags, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURLs, p.Tags, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	cache.InvalidateCatalogLists()

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

// UploadProductImage stocke une image produit dans MinIO (admin)
func UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' requis"})
		return
	}

	url, err := services.UploadImage("products", file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
