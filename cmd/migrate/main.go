package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mhorie/pos-backend/internal/modules/operator"
)

// Schema creation is idempotent so the command can run on every deploy.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	prd_id  SERIAL PRIMARY KEY,
	code    VARCHAR(13) NOT NULL UNIQUE,
	name    VARCHAR(50) NOT NULL,
	price   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	trd_id               SERIAL PRIMARY KEY,
	transaction_datetime TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	emp_cd               VARCHAR(10) NOT NULL,
	store_cd             VARCHAR(5) NOT NULL,
	pos_no               VARCHAR(3) NOT NULL,
	total_amt            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transaction_details (
	dtl_id    SERIAL PRIMARY KEY,
	trd_id    INTEGER NOT NULL REFERENCES transactions (trd_id),
	prd_id    INTEGER NOT NULL REFERENCES products (prd_id),
	prd_code  VARCHAR(13) NOT NULL,
	prd_name  VARCHAR(50) NOT NULL,
	prd_price INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transaction_details_trd_id
	ON transaction_details (trd_id);

CREATE TABLE IF NOT EXISTS operators (
	emp_cd        VARCHAR(10) PRIMARY KEY,
	name          VARCHAR(50) NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func main() {
	seedOperator := flag.String("operator", "", "seed an operator as CODE:NAME:PASSWORD")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Schema is up to date.")

	if *seedOperator != "" {
		if err := seed(db, *seedOperator); err != nil {
			log.Fatal(err)
		}
	}
}

func seed(db *sql.DB, spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("-operator must be CODE:NAME:PASSWORD")
	}
	code, name, password := parts[0], parts[1], parts[2]

	svc := operator.NewService(operator.NewPostgresRepository(db))
	if _, err := svc.Provision(context.Background(), code, name, password); err != nil {
		return err
	}
	fmt.Printf("Operator %s seeded.\n", code)
	return nil
}
