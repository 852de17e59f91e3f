package database

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
)

// Sans keyspace users configuré, les getters renvoient nil :
// les handlers retombent sur session.Query ou répondent 500.
func TestPreparedGettersNilWithoutSession(t *testing.T) {
	t.Setenv("SCYLLA_KS_USERS_KEYSPACE", "")

	assert.Nil(t, GetPreparedGetUserByEmail())
	assert.Nil(t, GetPreparedGetUserByID())
	assert.Nil(t, GetPreparedInsertUser())
	assert.Nil(t, GetPreparedInsertUserByEmail())
	assert.Nil(t, GetPreparedGetProfile())
	assert.Nil(t, GetPreparedUpsertProfile())
}

// Chaque requête porte ses propres valeurs liées : des connexions
// simultanées ne doivent jamais croiser leurs arguments. Chaque goroutine
// construit sa requête comme le font les handlers, une par appel.
func TestConcurrentBindsStayIndependent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			email := fmt.Sprintf("client-%d@pawhaven.test", n)
			q := new(gocql.Query).Bind(email)
			assert.NotNil(t, q)
		}(i)
	}
	wg.Wait()
}
