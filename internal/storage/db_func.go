package storage

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/calcyard/mathcalc/internal/mathparse"
	"github.com/calcyard/mathcalc/internal/symbol"
)

// InitSchema creates the tables the service relies on.
func InitSchema(db *sql.DB) error {
	const (
		usersTable = `
		CREATE TABLE IF NOT EXISTS users(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT UNIQUE,
			hashedPassword TEXT NOT NULL
		);`

		expressionsTable = `
		CREATE TABLE IF NOT EXISTS expressions(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hash INTEGER NOT NULL,
			postfixExpression TEXT,
			userId INTEGER NOT NULL,
			status TEXT,
			result TEXT,

			FOREIGN KEY (userId) REFERENCES users (id)
		);`

		constantsTable = `
		CREATE TABLE IF NOT EXISTS constants(
			name TEXT PRIMARY KEY,
			value REAL NOT NULL
		);`

		functionsTable = `
		CREATE TABLE IF NOT EXISTS functions(
			name TEXT PRIMARY KEY,
			nVar INTEGER NOT NULL,
			expression TEXT NOT NULL
		);`
	)

	for _, q := range []string{usersTable, expressionsTable, constantsTable, functionsTable} {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *storage) validateToken(bearerToken string) (*jwt.Token, error) {
	tokenString := strings.TrimPrefix(bearerToken, "Bearer ")
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.jwtKey, nil
	})
}

// authorize resolves the request's bearer token to a user id.
func (s *storage) authorize(r *http.Request) (int, error) {
	token, err := s.validateToken(r.Header.Get("Authorization"))
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}

	user := token.Claims.(jwt.MapClaims)
	id, err := strconv.Atoi(user["id"].(string))
	if err != nil {
		return 0, err
	}
	return id, nil
}

func storeExpressionState(db *sql.DB, status state, result string, userId int, hash exprHash, postfix []string) (int64, error) {
	const q = `
	INSERT INTO expressions (status, result, userId, hash, postfixExpression) VALUES ($1, $2, $3, $4, $5)
	`
	res, err := db.Exec(q, status, result, userId, hash, strings.Join(postfix, " "))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func updateExpressionState(db *sql.DB, status state, result string, id int64) error {
	const q = `
	UPDATE expressions SET status = $1, result = $2 WHERE id = $3
	`
	_, err := db.Exec(q, status, result, id)
	return err
}

func checkExpressionExists(db *sql.DB, hash exprHash, userId int) (int64, error) {
	const q = `
	SELECT id FROM expressions WHERE hash = $1 AND userId = $2
	`
	var id int64
	err := db.QueryRow(q, hash, userId).Scan(&id)
	return id, err
}

func getExpressionState(db *sql.DB, id int) (expressionState, error) {
	const q = `
	SELECT status, result FROM expressions WHERE id = $1`
	var (
		st     state
		result string
	)
	if err := db.QueryRow(q, id).Scan(&st, &result); err != nil {
		return expressionState{}, err
	}
	return expressionState{State: st, Result: result}, nil
}

func storeUserConstant(db *sql.DB, name string, value float64) error {
	const q = `
	INSERT INTO constants (name, value) VALUES ($1, $2)
	`
	_, err := db.Exec(q, name, value)
	return err
}

func storeUserFunction(db *sql.DB, name string, nVar int, expression string) error {
	const q = `
	INSERT INTO functions (name, nVar, expression) VALUES ($1, $2, $3)
	`
	_, err := db.Exec(q, name, nVar, expression)
	return err
}

func deleteUserConstant(db *sql.DB, name string) error {
	_, err := db.Exec(`DELETE FROM constants WHERE name = $1`, name)
	return err
}

func deleteUserFunction(db *sql.DB, name string) error {
	_, err := db.Exec(`DELETE FROM functions WHERE name = $1`, name)
	return err
}

// loadUserSymbols replays saved constants and function definitions into a
// fresh registry. Functions are re-defined from their stored template
// expressions, after constants so templates can reference them.
func loadUserSymbols(db *sql.DB, eval *mathparse.Evaluator) error {
	rows, err := db.Query(`SELECT name, value FROM constants`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			name  string
			value float64
		)
		if err := rows.Scan(&name, &value); err != nil {
			return err
		}
		c, err := symbol.NewConstant(name, value)
		if err != nil {
			return err
		}
		if err := eval.AddConstant(c); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	fnRows, err := db.Query(`SELECT name, nVar, expression FROM functions`)
	if err != nil {
		return err
	}
	defer fnRows.Close()
	for fnRows.Next() {
		var (
			name       string
			nVar       int
			expression string
		)
		if err := fnRows.Scan(&name, &nVar, &expression); err != nil {
			return err
		}
		if _, err := eval.DefineFunction(name, nVar, expression); err != nil {
			return err
		}
	}
	return fnRows.Err()
}
