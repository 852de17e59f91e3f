package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := CartProduct{
		ID:       "prod-1",
		Name:     "Arbre à chat",
		Price:    59.99,
		ImageURL: "http://minio/pawhaven/products/arbre.jpg",
	}

	raw, err := EncodeSnapshot(p)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot("{pas du json")
	assert.Error(t, err)
}

func TestDecodeSnapshotRejectsMissingID(t *testing.T) {
	_, err := DecodeSnapshot(`{"name":"Sans ID","price":10}`)
	assert.Error(t, err)
}

func TestDecodeSnapshotRejectsNegativePrice(t *testing.T) {
	_, err := DecodeSnapshot(`{"id":"prod-1","name":"Prix cassé","price":-5}`)
	assert.Error(t, err)
}

func TestProductSnapshotTakesFirstImage(t *testing.T) {
	p := Product{
		Name:      "Panier douillet",
		Price:     34.50,
		ImageURLs: []string{"http://minio/pawhaven/products/panier.jpg", "http://autre.jpg"},
	}

	snap := p.Snapshot()
	assert.Equal(t, "http://minio/pawhaven/products/panier.jpg", snap.ImageURL)
	assert.Equal(t, 34.50, snap.Price)
}
