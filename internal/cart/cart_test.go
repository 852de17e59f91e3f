package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawhaven_back_end/internal/models"
)

// fakeStore simule la table cart_items distante en mémoire,
// avec l'upsert sur (user_id, product_id).
type fakeStore struct {
	rows    map[string]models.CartItem // clé: userID|productID
	nextID  int
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]models.CartItem)}
}

func (f *fakeStore) key(userID, productID string) string {
	return userID + "|" + productID
}

func (f *fakeStore) Load(_ context.Context, userID string) ([]models.CartItem, error) {
	if f.failAll {
		return nil, errors.New("store indisponible")
	}
	var items []models.CartItem
	for _, row := range f.rows {
		if row.UserID == userID {
			items = append(items, row)
		}
	}
	return items, nil
}

func (f *fakeStore) Insert(_ context.Context, item models.CartItem) (models.CartItem, error) {
	if f.failAll {
		return models.CartItem{}, errors.New("store indisponible")
	}
	f.nextID++
	item.ItemID = fmt.Sprintf("row-%d", f.nextID)
	f.rows[f.key(item.UserID, item.Product.ID)] = item
	return item, nil
}

func (f *fakeStore) UpdateQuantity(_ context.Context, userID, productID string, quantity int) error {
	if f.failAll {
		return errors.New("store indisponible")
	}
	row, ok := f.rows[f.key(userID, productID)]
	if !ok {
		return errors.New("ligne introuvable")
	}
	row.Quantity = quantity
	f.rows[f.key(userID, productID)] = row
	return nil
}

func (f *fakeStore) Delete(_ context.Context, item models.CartItem) error {
	if f.failAll {
		return errors.New("store indisponible")
	}
	delete(f.rows, f.key(item.UserID, item.Product.ID))
	return nil
}

func (f *fakeStore) DeleteAll(_ context.Context, userID string) error {
	if f.failAll {
		return errors.New("store indisponible")
	}
	for key, row := range f.rows {
		if row.UserID == userID {
			delete(f.rows, key)
		}
	}
	return nil
}

func croquettes() models.CartProduct {
	return models.CartProduct{ID: "prod-1", Name: "Croquettes saumon 2kg", Price: 24.90}
}

func laisse() models.CartProduct {
	return models.CartProduct{ID: "prod-2", Name: "Laisse réglable", Price: 12.50}
}

// Après toute séquence d'opérations réussies, l'état mémoire doit être
// identique à ce qu'un rechargement complet retournerait.
func assertMatchesFreshLoad(t *testing.T, c *Cart, store Store, userID string) {
	t.Helper()
	fresh := New(store, userID)
	fresh.Load(context.Background())

	byProduct := func(items []models.CartItem) map[string]int {
		m := make(map[string]int)
		for _, item := range items {
			m[item.Product.ID] = item.Quantity
		}
		return m
	}
	assert.Equal(t, byProduct(fresh.Items()), byProduct(c.Items()))
}

func TestAddInsertsNewItem(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())

	c.Add(context.Background(), croquettes())

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
	assert.NotEmpty(t, c.Items()[0].ItemID)
	assertMatchesFreshLoad(t, c, store, "user-1")
}

func TestAddExistingProductIncrementsQuantity(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())

	c.Add(context.Background(), croquettes())
	c.Add(context.Background(), croquettes())
	c.Add(context.Background(), croquettes())

	require.Len(t, c.Items(), 1, "pas de ligne dupliquée pour le même produit")
	assert.Equal(t, 3, c.Items()[0].Quantity)
	assertMatchesFreshLoad(t, c, store, "user-1")
}

func TestAddWithoutUserIsNoop(t *testing.T) {
	store := newFakeStore()
	c := New(store, "")
	c.Load(context.Background())

	c.Add(context.Background(), croquettes())

	assert.Empty(t, c.Items())
	assert.Empty(t, store.rows)
}

func TestUpdateQuantityBelowOneIsNoop(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())
	c.Add(context.Background(), croquettes())

	c.UpdateQuantity(context.Background(), "prod-1", 0)
	c.UpdateQuantity(context.Background(), "prod-1", -4)

	assert.Equal(t, 1, c.Items()[0].Quantity)
	assertMatchesFreshLoad(t, c, store, "user-1")
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())
	c.Add(context.Background(), croquettes())

	c.UpdateQuantity(context.Background(), "prod-inconnu", 5)

	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())
	c.Add(context.Background(), croquettes())
	c.Add(context.Background(), laisse())

	c.RemoveItem(context.Background(), "prod-1")

	require.Len(t, c.Items(), 1)
	assert.Equal(t, "prod-2", c.Items()[0].Product.ID)
	assertMatchesFreshLoad(t, c, store, "user-1")
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())
	c.Add(context.Background(), croquettes())

	c.RemoveItem(context.Background(), "prod-inconnu")

	assert.Len(t, c.Items(), 1)
}

func TestClearEmptiesRemoteAndLocal(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())
	c.Add(context.Background(), croquettes())
	c.Add(context.Background(), laisse())

	c.Clear(context.Background())

	assert.Empty(t, c.Items())
	assert.Empty(t, store.rows)
}

func TestTotalIsRecomputedOnEveryRead(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())

	assert.Equal(t, 0.0, c.Total())

	c.Add(context.Background(), croquettes()) // 24.90
	c.Add(context.Background(), laisse())     // 12.50
	assert.InDelta(t, 37.40, c.Total(), 0.0001)

	c.UpdateQuantity(context.Background(), "prod-1", 3)
	assert.InDelta(t, 3*24.90+12.50, c.Total(), 0.0001)

	c.RemoveItem(context.Background(), "prod-2")
	assert.InDelta(t, 3*24.90, c.Total(), 0.0001)
}

func TestLoadFailureFallsBackToEmptyCart(t *testing.T) {
	store := newFakeStore()
	seed := New(store, "user-1")
	seed.Load(context.Background())
	seed.Add(context.Background(), croquettes())

	store.failAll = true
	c := New(store, "user-1")
	c.Load(context.Background())

	assert.Empty(t, c.Items(), "erreur distante → panier vide, pas de panique")
}

func TestRemoteFailureLeavesLocalStateUnchanged(t *testing.T) {
	store := newFakeStore()
	c := New(store, "user-1")
	c.Load(context.Background())
	c.Add(context.Background(), croquettes())

	store.failAll = true
	c.Add(context.Background(), laisse())
	c.UpdateQuantity(context.Background(), "prod-1", 7)
	c.RemoveItem(context.Background(), "prod-1")
	c.Clear(context.Background())

	require.Len(t, c.Items(), 1)
	assert.Equal(t, "prod-1", c.Items()[0].Product.ID)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestConcurrentStyleDoubleAddStaysSingleRow(t *testing.T) {
	// Deux ajouts depuis deux copies mémoire périmées : grâce à l'upsert
	// clé (user, product), la base ne contient qu'une seule ligne.
	store := newFakeStore()

	a := New(store, "user-1")
	a.Load(context.Background())
	b := New(store, "user-1")
	b.Load(context.Background())

	a.Add(context.Background(), croquettes())
	b.Add(context.Background(), croquettes())

	fresh := New(store, "user-1")
	fresh.Load(context.Background())
	assert.Len(t, fresh.Items(), 1)
}
