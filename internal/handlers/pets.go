package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawhaven_back_end/internal/cache"
	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
	"pawhaven_back_end/internal/services"

	"github.com/gocql/gocql"
)

// GetAllPets liste les animaux à l'adoption
func GetAllPets(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "pets:all"

	// ✅ Vérifie le cache Redis
	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Pet
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

	iter := session.Query(`SELECT pet_id, name, species, breed, age_months, description, image_urls, adopted, created_at, updated_at FROM pets`).Iter()

	var pets []models.Pet
	var p models.Pet

	for iter.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.AgeMonths, &p.Description, &p.ImageURLs, &p.Adopted, &p.CreatedAt, &p.UpdatedAt) {
		pets = append(pets, p)
		p = models.Pet{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture animaux: " + err.Error()})
		return
	}

	// ✅ Met en cache
	if jsonData, err := json.Marshal(pets); err == nil {
		database.RedisClient.Set(ctx, cacheKey, jsonData, 10*time.Minute)
	}

	c.JSON(http.StatusOK, pets)
}

// GetPet renvoie une fiche animal
func GetPet(c *gin.Context) {
	pet, err := cache.GetPetFromCache(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Animal introuvable"})
		return
	}
	c.JSON(http.StatusOK, pet)
}

// SearchPets recherche dans le refuge via Elasticsearch
func SearchPets(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'q' requis"})
		return
	}

	results, err := services.SearchPets(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// CreatePet ajoute un animal au refuge (admin)
func CreatePet(c *gin.Context) {
	var p models.Pet

	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.Name == "" || p.Species == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'name' et 'species' sont obligatoires"})
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

	query := `INSERT INTO pets (pet_id, name, species, breed, age_months, description, image_urls, adopted, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, p.ID, p.Name, p.Species, p.Breed, p.AgeMonths, p.Description, p.ImageURLs, p.Adopted, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création animal: " + err.Error()})
		return
	}

	cache.InvalidateCatalogLists()

	// 🔄 Indexation Elasticsearch
	go services.IndexPet(p)

	c.JSON(http.StatusOK, p)
}

// UploadPetImage stocke une photo d'animal dans MinIO (admin)
func UploadPetImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' requis"})
		return
	}

	url, err := services.UploadImage("pets", file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
