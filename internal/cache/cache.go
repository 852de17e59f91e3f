package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
)

const (
	ProfileCacheTTL = 5 * time.Minute
	PetCacheTTL     = 10 * time.Minute
)

// GetProfileFromCache récupère un profil de livraison depuis Redis ou ScyllaDB
func GetProfileFromCache(userID string) (*models.UserProfile, error) {
	ctx := context.Background()
	key := "profile:" + userID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var profile models.UserProfile
		if json.Unmarshal([]byte(data), &profile) == nil {
			return &profile, nil
		}
	}

	// 2. Récupérer de ScyllaDB (prepared statement si disponible)
	var profile models.UserProfile
	profile.ID = userID

	if stmt := database.GetPreparedGetProfile(); stmt != nil {
		err = stmt.Bind(userID).Scan(
			&profile.FullName, &profile.Phone, &profile.Address,
			&profile.City, &profile.State, &profile.ZipCode)
	} else {
		session, serr := database.GetUsersSession()
		if serr != nil {
			return nil, serr
		}
		err = session.Query(`SELECT full_name, phone, address, city, state, zip_code
			FROM user_profiles WHERE user_id = ?`, userID).Scan(
			&profile.FullName, &profile.Phone, &profile.Address,
			&profile.City, &profile.State, &profile.ZipCode)
	}
	if err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(profile)
	database.Redis.Set(ctx, key, jsonData, ProfileCacheTTL)

	return &profile, nil
}

// InvalidateProfileCache invalide le cache du profil d'un utilisateur
func InvalidateProfileCache(userID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "profile:"+userID)
}

// GetPetFromCache récupère une fiche animal depuis Redis ou ScyllaDB
func GetPetFromCache(petID string) (*models.Pet, error) {
	ctx := context.Background()
	key := "pet:" + petID

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var pet models.Pet
		if json.Unmarshal([]byte(data), &pet) == nil {
			return &pet, nil
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	pid, err := uuid.Parse(petID)
	if err != nil {
		return nil, err
	}

	var pet models.Pet
	err = session.Query(`SELECT pet_id, name, species, breed, age_months, description, image_urls, adopted, created_at, updated_at
		FROM pets WHERE pet_id = ?`, gocql.UUID(pid)).Scan(
		&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.AgeMonths,
		&pet.Description, &pet.ImageURLs, &pet.Adopted, &pet.CreatedAt, &pet.UpdatedAt)
	if err != nil {
		return nil, err
	}

	jsonData, _ := json.Marshal(pet)
	database.Redis.Set(ctx, key, jsonData, PetCacheTTL)

	return &pet, nil
}

// InvalidatePetCache invalide le cache d'un animal
func InvalidatePetCache(petID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "pet:"+petID)
}

// InvalidateCatalogLists invalide les listes catalogue mises en cache
func InvalidateCatalogLists() {
	ctx := context.Background()
	database.Redis.Del(ctx, "pets:all", "products:all")
}
