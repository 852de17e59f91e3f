// Package cart assure la synchronisation entre l'état mémoire du panier
// et la table cart_items distante. La base reste la source de vérité :
// chaque mutation attend l'acquittement distant avant de toucher l'état local.
package cart

import (
	"context"
	"log"

	"pawhaven_back_end/internal/models"
)

// Store abstrait la table cart_items distante.
// Les écritures sont des upserts clés sur (user_id, product_id) : deux ajouts
// quasi simultanés du même produit ne peuvent plus créer deux lignes.
type Store interface {
	Load(ctx context.Context, userID string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (models.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
	Delete(ctx context.Context, item models.CartItem) error
	DeleteAll(ctx context.Context, userID string) error
}

// Cart tient la copie mémoire du panier d'un utilisateur.
// Une instance sert une seule requête : l'état est rechargé via Load
// et toute divergence est réconciliée au prochain chargement.
type Cart struct {
	userID string
	store  Store
	items  []models.CartItem
}

func New(store Store, userID string) *Cart {
	return &Cart{userID: userID, store: store}
}

// Load recharge le panier depuis la base. En cas d'erreur distante on
// retombe sur un panier vide : l'affichage ne doit jamais planter.
func (c *Cart) Load(ctx context.Context) {
	if c.userID == "" {
		c.items = nil
		return
	}

	items, err := c.store.Load(ctx, c.userID)
	if err != nil {
		log.Printf("⚠️ Erreur chargement panier (user %s): %v", c.userID, err)
		c.items = nil
		return
	}
	c.items = items
}

// Add ajoute un produit au panier. Si le produit est déjà présent dans la
// copie mémoire, on incrémente sa quantité (lecture-modification-écriture
// sur la copie en cache, pas sur la ligne distante).
func (c *Cart) Add(ctx context.Context, product models.CartProduct) {
	if c.userID == "" {
		return
	}

	for _, item := range c.items {
		if item.Product.ID == product.ID {
			c.UpdateQuantity(ctx, product.ID, item.Quantity+1)
			return
		}
	}

	stored, err := c.store.Insert(ctx, models.CartItem{
		UserID:   c.userID,
		Product:  product,
		Quantity: 1,
	})
	if err != nil {
		log.Printf("⚠️ Erreur ajout au panier (produit %s): %v", product.ID, err)
		return
	}

	c.items = append(c.items, stored)
}

// RemoveItem retire un produit du panier. No-op si le produit
// n'est pas dans la copie mémoire.
func (c *Cart) RemoveItem(ctx context.Context, productID string) {
	if c.userID == "" {
		return
	}

	var target *models.CartItem
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			target = &c.items[i]
			break
		}
	}
	if target == nil {
		return
	}

	if err := c.store.Delete(ctx, *target); err != nil {
		log.Printf("⚠️ Erreur suppression du panier (produit %s): %v", productID, err)
		return
	}

	kept := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// UpdateQuantity fixe la quantité d'un produit. No-op si quantité < 1,
// si aucun utilisateur n'est authentifié ou si le produit est absent.
// Aucun plafond n'est appliqué.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if c.userID == "" || quantity < 1 {
		return
	}

	var target *models.CartItem
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			target = &c.items[i]
			break
		}
	}
	if target == nil {
		return
	}

	if err := c.store.UpdateQuantity(ctx, c.userID, productID, quantity); err != nil {
		log.Printf("⚠️ Erreur mise à jour quantité (produit %s): %v", productID, err)
		return
	}

	target.Quantity = quantity
}

// Clear vide entièrement le panier (suppression distante puis locale).
// Utilisé par le checkout après envoi de la commande.
func (c *Cart) Clear(ctx context.Context) {
	if c.userID == "" {
		return
	}

	if err := c.store.DeleteAll(ctx, c.userID); err != nil {
		log.Printf("⚠️ Erreur vidage panier (user %s): %v", c.userID, err)
		return
	}

	c.items = nil
}

// Items retourne la copie mémoire courante
func (c *Cart) Items() []models.CartItem {
	if c.items == nil {
		return []models.CartItem{}
	}
	return c.items
}

// Total est dérivé, jamais stocké : somme prix × quantité recalculée à chaque lecture
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
