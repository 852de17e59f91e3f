package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
)

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexProduct indexe un produit de la boutique dans Elasticsearch
func IndexProduct(p models.Product) {
	indexDocument("products", p.ID.String(), p, p.Name)
}

// IndexPet indexe une fiche animal dans Elasticsearch
func IndexPet(pet models.Pet) {
	indexDocument("pets", pet.ID.String(), pet, pet.Name)
}

func indexDocument(index, id string, doc interface{}, label string) {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", label)
		return
	}

	data, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", label, res.String())
	} else {
		log.Printf("✅ Document indexé dans Elasticsearch (%s): %s", index, label)
	}
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// SearchProducts recherche des produits par nom, description ou tags
func SearchProducts(query string) ([]map[string]interface{}, error) {
	return search("products", query, []string{"name", "description", "tags"})
}

// SearchPets recherche des animaux par nom, espèce, race ou description
func SearchPets(query string) ([]map[string]interface{}, error) {
	return search("pets", query, []string{"name", "species", "breed", "description"})
}

func search(index, query string, fields []string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": fields,
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{index},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (pas de hits)")
	}

	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (hits mal formés)")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		h, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if source, ok := h["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}

	return results, nil
}
