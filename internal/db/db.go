package db

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"study-rag/ent"
)

// NewClient opens the Postgres connection and ensures the schema exists.
func NewClient(ctx context.Context, dbURL string) (*ent.Client, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	drv, err := entsql.Open(dialect.Postgres, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}

	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed creating schema resources: %w", err)
	}

	logrus.Info("database schema verified")
	return client, nil
}
