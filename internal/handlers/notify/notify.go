// Package notify héberge les deux handlers d'e-mail transactionnel :
// récapitulatif de commande et demande d'adoption. Un handler = une requête,
// un e-mail, une réponse. Aucun retry, aucune clé d'idempotence.
package notify

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Mailer envoie un e-mail HTML via le relais SMTP
type Mailer interface {
	Send(from, to, subject, htmlBody string) error
}

// CartClearer supprime toutes les lignes panier d'un utilisateur
type CartClearer interface {
	DeleteAll(ctx context.Context, userID string) error
}

// Notifier porte ses dépendances explicitement plutôt que par singletons :
// les tests les remplacent par des fakes.
type Notifier struct {
	Mailer Mailer
	Carts  CartClearer
}

func New(mailer Mailer, carts CartClearer) *Notifier {
	return &Notifier{Mailer: mailer, Carts: carts}
}

type mailConfig struct {
	EmailUser  string
	EmailPass  string
	OwnerEmail string
}

// loadMailConfig vérifie que les trois variables mail sont présentes
func loadMailConfig() (mailConfig, bool) {
	cfg := mailConfig{
		EmailUser:  os.Getenv("EMAIL_USER"),
		EmailPass:  os.Getenv("EMAIL_PASS"),
		OwnerEmail: os.Getenv("OWNER_EMAIL"),
	}
	ok := cfg.EmailUser != "" && cfg.EmailPass != "" && cfg.OwnerEmail != ""
	return cfg, ok
}

// setCORSHeaders pose les en-têtes permissifs attendus par le front
func setCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// Preflight répond aux requêtes OPTIONS : 200, corps vide
func Preflight(c *gin.Context) {
	setCORSHeaders(c)
	c.Status(http.StatusOK)
}
