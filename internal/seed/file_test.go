package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
assets:
  - package_name: trolled.fortnite.jpeg
    title: fortnite.jpeg
    version: 6.9.420
    description: a man sticking his tongue out
    tags: [Fortnite, Meme]
    payload: "body { background: url(fortnite.jpeg) }"
    type: theme
  - package_name: hello.plugin
    title: Hello
    version: 0.1.0
    description: says hello
    image: https://cdn.example.com/hello.png
    payload: "console.log('hello')"
    type: plugin
`

func TestDecode_Document(t *testing.T) {
	assets, err := Decode(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "trolled.fortnite.jpeg", assets[0].PackageName)
	assert.Equal(t, "6.9.420", assets[0].Version)
	assert.Equal(t, []string{"Fortnite", "Meme"}, assets[0].Tags)
	assert.Nil(t, assets[0].Image)

	require.NotNil(t, assets[1].Image)
	assert.Equal(t, "https://cdn.example.com/hello.png", *assets[1].Image)
	assert.Nil(t, assets[1].Tags)
}

func TestDecode_JSONList(t *testing.T) {
	assets, err := Decode(strings.NewReader(`[
		{"package_name": "a", "title": "A", "description": "d", "version": "1", "payload": "p", "type": "theme", "video": "v.mp4"}
	]`))
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.NotNil(t, assets[0].Video)
	assert.Equal(t, "v.mp4", *assets[0].Video)
}

func TestDecode_Empty(t *testing.T) {
	assets, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestDecode_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"scalar root":   "just text",
		"unknown field": "assets: []\nextra: 1\n",
		"bad yaml":      "assets: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	assets, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, assets, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
