package database

import (
	"github.com/doug-martin/goqu/v9"
	// registers the "postgres" dialect so goqu emits $n placeholders
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/postgres"
)

func newGoqu(client *postgres.Client) *goqu.Database {
	return goqu.New("postgres", client.DB())
}
