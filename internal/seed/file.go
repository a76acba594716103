// Package seed reads catalog seed files for the admin tooling.
package seed

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/assetcatalog/catalog-api/internal/usecase"
)

// Asset mirrors one catalog entry in a seed file. JSON files parse too,
// since JSON is valid YAML.
type Asset struct {
	PackageName string   `yaml:"package_name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Version     string   `yaml:"version"`
	Image       *string  `yaml:"image"`
	Video       *string  `yaml:"video"`
	Payload     string   `yaml:"payload"`
	Type        string   `yaml:"type"`
}

type File struct {
	Assets []Asset `yaml:"assets"`
}

func Load(path string) ([]usecase.CatalogAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open seed file")
	}
	defer f.Close()

	assets, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return assets, nil
}

// Decode accepts either a top-level list of assets or a document with an
// "assets" list.
func Decode(r io.Reader) ([]usecase.CatalogAsset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var list []Asset
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(&list)
	case yaml.MappingNode:
		var doc File
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
		list = doc.Assets
	default:
		err = errors.New("expected a list of assets or an assets: document")
	}
	if err != nil {
		return nil, err
	}

	out := make([]usecase.CatalogAsset, 0, len(list))
	for _, a := range list {
		out = append(out, usecase.CatalogAsset{
			PackageName: a.PackageName,
			Title:       a.Title,
			Description: a.Description,
			Tags:        a.Tags,
			Version:     a.Version,
			Image:       a.Image,
			Video:       a.Video,
			Payload:     a.Payload,
			Type:        a.Type,
		})
	}
	return out, nil
}
