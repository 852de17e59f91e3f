package cart

import (
	"context"

	"github.com/gocql/gocql"

	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/models"
)

// ScyllaStore implémente Store sur la table cart_items du keyspace users.
// La clé primaire (user_id, product_id) fait de chaque insertion un upsert :
// au plus une ligne par couple (utilisateur, produit).
type ScyllaStore struct{}

func NewScyllaStore() *ScyllaStore {
	return &ScyllaStore{}
}

func (s *ScyllaStore) Load(ctx context.Context, userID string) ([]models.CartItem, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT item_id, product_id, product_snapshot, quantity
		FROM cart_items WHERE user_id = ?`, userID).WithContext(ctx).Iter()

	var items []models.CartItem
	var (
		itemID    gocql.UUID
		productID string
		snapshot  string
		quantity  int
	)

	for iter.Scan(&itemID, &productID, &snapshot, &quantity) {
		if quantity < 1 {
			continue
		}
		product, err := models.DecodeSnapshot(snapshot)
		if err != nil {
			// Snapshot illisible : on ignore la ligne plutôt que de casser tout le panier
			continue
		}
		items = append(items, models.CartItem{
			ItemID:   itemID.String(),
			UserID:   userID,
			Product:  product,
			Quantity: quantity,
		})
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *ScyllaStore) Insert(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return models.CartItem{}, err
	}

	snapshot, err := models.EncodeSnapshot(item.Product)
	if err != nil {
		return models.CartItem{}, err
	}

	itemID := gocql.TimeUUID()
	err = session.Query(`INSERT INTO cart_items (user_id, product_id, item_id, product_snapshot, quantity)
		VALUES (?, ?, ?, ?, ?)`,
		item.UserID, item.Product.ID, itemID, snapshot, item.Quantity).WithContext(ctx).Exec()
	if err != nil {
		return models.CartItem{}, err
	}

	item.ItemID = itemID.String()
	return item, nil
}

func (s *ScyllaStore) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	return session.Query(`UPDATE cart_items SET quantity = ? WHERE user_id = ? AND product_id = ?`,
		quantity, userID, productID).WithContext(ctx).Exec()
}

func (s *ScyllaStore) Delete(ctx context.Context, item models.CartItem) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	return session.Query(`DELETE FROM cart_items WHERE user_id = ? AND product_id = ?`,
		item.UserID, item.Product.ID).WithContext(ctx).Exec()
}

func (s *ScyllaStore) DeleteAll(ctx context.Context, userID string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	return session.Query(`DELETE FROM cart_items WHERE user_id = ?`, userID).WithContext(ctx).Exec()
}
