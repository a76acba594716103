package server

import (
	"bytes"
	"encoding/json"
)

// CatalogAsset is the public shape of one catalog entry. The package name is
// not part of it; it is the key the entry is listed under.
type CatalogAsset struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Version     string   `json:"version"`
	Image       *string  `json:"image"`
	Video       *string  `json:"video"`
	Payload     string   `json:"payload"`
	Type        string   `json:"type"`
}

// CatalogAssets is an object keyed by package name that serializes its
// keys in store order rather than sorted.
type CatalogAssets struct {
	Keys   []string
	Values map[string]CatalogAsset
}

func (a CatalogAssets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.Values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type ListCatalogAssetsRes struct {
	Assets CatalogAssets `json:"assets"`
}

type CatalogPagesRes struct {
	Pages int `json:"pages"`
}

type ErrorRes struct {
	Error string `json:"error"`
}

const (
	MSG_INVALID_PAGE   = "Page must be a positive number!"
	MSG_INTERNAL_ERROR = "There was an error"
)
