package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	testCases := []struct {
		name        string
		url         string
		dialectName string
	}{
		{"postgres scheme", "postgres://user:pw@localhost/cms", "postgres"},
		{"postgresql scheme", "postgresql://user:pw@localhost/cms", "postgres"},
		{"mysql scheme", "mysql://user:pw@tcp(localhost:3306)/cms", "mysql"},
		{"file path", "./data/site.db", "sqlite"},
		{"in-memory", ":memory:", "sqlite"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Dialector(tc.url)

			require.NotNil(t, d)
			assert.Equal(t, tc.dialectName, d.Name())
		})
	}
}

func TestIsSQLite(t *testing.T) {
	assert.True(t, IsSQLite("./data/site.db"))
	assert.True(t, IsSQLite(":memory:"))
	assert.False(t, IsSQLite("postgres://user:pw@localhost/cms"))
	assert.False(t, IsSQLite("postgresql://user:pw@localhost/cms"))
	assert.False(t, IsSQLite("mysql://user:pw@tcp(localhost:3306)/cms"))
}
