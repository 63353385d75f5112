package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/cpr?sslmode=disable": "pgx5://u:p@localhost:5432/cpr?sslmode=disable",
		"postgresql://u:p@localhost:5432/cpr":               "pgx5://u:p@localhost:5432/cpr",
		"pgx5://u:p@localhost:5432/cpr":                     "pgx5://u:p@localhost:5432/cpr",
	}
	for in, want := range cases {
		assert.Equal(t, want, MigrationURL(in), in)
	}
}
