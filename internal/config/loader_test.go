package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
country_codes:
  - code: "+91"
    country: "India"
  - code: "+1"
    country: "United States"
positions:
  - "Software Engineer"
  - "Data Scientist"
tech_stack:
  - name: backend
    title: "Backend"
    options:
      - "Go (Golang)"
      - "Python (Django, Flask)"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talentscout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	catalog, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	assert.Len(t, catalog.CountryCodes, 2)
	assert.True(t, catalog.KnownCountryCode("+91"))
	assert.False(t, catalog.KnownCountryCode("+999"))

	position, ok := catalog.Position(2)
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", position)

	_, ok = catalog.Position(0)
	assert.False(t, ok)
	_, ok = catalog.Position(3)
	assert.False(t, ok)

	assert.True(t, catalog.KnownPosition("Software Engineer"))
	assert.False(t, catalog.KnownPosition("Astronaut"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no country codes", `
positions: ["Software Engineer"]
tech_stack:
  - {name: backend, title: "Backend", options: ["Go (Golang)"]}
`},
		{"code without plus", `
country_codes: [{code: "91", country: "India"}]
positions: ["Software Engineer"]
tech_stack:
  - {name: backend, title: "Backend", options: ["Go (Golang)"]}
`},
		{"code without country", `
country_codes: [{code: "+91"}]
positions: ["Software Engineer"]
tech_stack:
  - {name: backend, title: "Backend", options: ["Go (Golang)"]}
`},
		{"no positions", `
country_codes: [{code: "+91", country: "India"}]
tech_stack:
  - {name: backend, title: "Backend", options: ["Go (Golang)"]}
`},
		{"category without options", `
country_codes: [{code: "+91", country: "India"}]
positions: ["Software Engineer"]
tech_stack:
  - {name: backend, title: "Backend", options: []}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.Error(t, err)
		})
	}
}
