package postgre

import (
	"testing"

	"mindmap-srv/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "mindmap"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=mindmap sslmode=disable search_path=public", dsn)

	dsn = DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "mindmap", SSLMode: "require", Schema: "mindmap"})
	assert.Contains(t, dsn, "sslmode=require search_path=mindmap")
}
