// internal/catalog/loader_test.go
package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-fit/internal/common/config"
	"franchise-fit/internal/common/logger"
)

const yamlList = `
- slug: burger-barn
  name: Burger Barn
  category: Food & Beverage
  investmentMin: 250000
  investmentMax: 600000
  avgRevenue: 1200000
  unitCount: 400
  tags: [storefront]
`

const yamlDocument = `
franchises:
  - slug: tutor-hub
    name: Tutor Hub
    category: Education
    investmentMin: 90000
    investmentMax: 180000
`

const jsonList = `[{"slug":"mobile-pet-spa","name":"Mobile Pet Spa","category":"Pet Services","investmentMin":60000,"investmentMax":120000,"tags":["mobile"]}]`

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "food/burgers.yaml", yamlList)
	writeFile(t, dir, "education.yml", yamlDocument)
	writeFile(t, dir, "nested/deeper/pets.json", jsonList)
	writeFile(t, dir, "README.md", "not a catalog")

	items, err := LoadFiles([]string{
		filepath.Join(dir, "**", "*.yaml"),
		filepath.Join(dir, "**", "*.yml"),
		filepath.Join(dir, "**", "*.json"),
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	slugs := []string{items[0].Slug, items[1].Slug, items[2].Slug}
	assert.ElementsMatch(t, []string{"burger-barn", "tutor-hub", "mobile-pet-spa"}, slugs)

	for _, f := range items {
		if f.Slug == "burger-barn" {
			require.NotNil(t, f.AvgRevenue)
			assert.Equal(t, 1200000, *f.AvgRevenue)
			assert.Equal(t, []string{"storefront"}, f.Tags)
		}
		if f.Slug == "tutor-hub" {
			assert.Nil(t, f.AvgRevenue)
		}
	}
}

func TestLoadFiles_NoMatches(t *testing.T) {
	_, err := LoadFiles([]string{filepath.Join(t.TempDir(), "*.yaml")})
	assert.Error(t, err)
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "franchises: [unterminated")

	_, err := LoadFile(filepath.Join(dir, "bad.yaml"))
	assert.Error(t, err)
}

func TestDecode_JSONDocument(t *testing.T) {
	items, err := Decode([]byte(`{"franchises":[{"slug":"a","name":"A"}]}`), true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Slug)

	items, err = Decode([]byte("  \n"), false)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoad_FileSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "catalog.yaml", yamlList)

	c, err := Load(context.Background(), config.CatalogConfig{
		Source: SourceFile,
		Paths:  []string{filepath.Join(dir, "*.yaml")},
	}, nil, logger.NewTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoad_DatabaseSourceNeedsConnection(t *testing.T) {
	_, err := Load(context.Background(), config.CatalogConfig{Source: SourcePostgres}, nil, logger.NewNoOpLogger())
	assert.Error(t, err)

	_, err = Load(context.Background(), config.CatalogConfig{Source: "s3"}, nil, logger.NewNoOpLogger())
	assert.Error(t, err)
}
