package database

import "github.com/gocql/gocql"

// CQL des requêtes fréquentes (comptes + profils). Chaque getter construit
// un *gocql.Query neuf : gocql prépare et met en cache le statement par
// session, et les valeurs liées restent propres à chaque requête.
const (
	cqlGetUserByEmail = "SELECT user_id FROM users_by_email WHERE email = ?"

	cqlGetUserByID = `SELECT email, password, name, role FROM users WHERE user_id = ?`

	cqlInsertUser = `INSERT INTO users (user_id, email, password, name, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	cqlInsertUserByEmail = "INSERT INTO users_by_email (email, user_id) VALUES (?, ?)"

	cqlGetProfile = `SELECT full_name, phone, address, city, state, zip_code
		FROM user_profiles WHERE user_id = ?`

	cqlUpsertProfile = `INSERT INTO user_profiles (user_id, full_name, phone, address, city, state, zip_code, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

// usersQuery construit une requête sur le keyspace users.
// Renvoie nil si la session n'est pas disponible : les handlers
// retombent alors sur session.Query ou répondent 500.
func usersQuery(cql string) *gocql.Query {
	session, err := GetUsersSession()
	if err != nil {
		return nil
	}
	return session.Query(cql)
}

func GetPreparedGetUserByEmail() *gocql.Query {
	return usersQuery(cqlGetUserByEmail)
}

func GetPreparedGetUserByID() *gocql.Query {
	return usersQuery(cqlGetUserByID)
}

func GetPreparedInsertUser() *gocql.Query {
	return usersQuery(cqlInsertUser)
}

func GetPreparedInsertUserByEmail() *gocql.Query {
	return usersQuery(cqlInsertUserByEmail)
}

func GetPreparedGetProfile() *gocql.Query {
	return usersQuery(cqlGetProfile)
}

func GetPreparedUpsertProfile() *gocql.Query {
	return usersQuery(cqlUpsertProfile)
}
