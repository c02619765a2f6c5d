// Package fs reads the product catalog from a local YAML or JSON file. It
// backs endpoints of the form file:///path/to/catalog.yaml and is handy for
// fixtures and demos without network access.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/byxorna/storefront/pkg/db"
	"github.com/byxorna/storefront/pkg/logging"
	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const Scheme = "file"

type Catalog struct {
	Path     string
	endpoint string
	logger   zerolog.Logger
}

// New opens nothing yet; the file is read on every List so edits show up on
// the next fetch.
func New(path string) (*Catalog, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	if expanded == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	return &Catalog{
		Path:     expanded,
		endpoint: (&url.URL{Scheme: Scheme, Path: expanded}).String(),
		logger:   logging.NewLogger("catalog-file"),
	}, nil
}

// NewFromURL accepts file:///abs/path and file://~/relative/to/home.
func NewFromURL(u *url.URL) (*Catalog, error) {
	if u.Scheme != Scheme {
		return nil, fmt.Errorf("unsupported scheme %q, expected %s", u.Scheme, Scheme)
	}
	return New(u.Host + u.Path)
}

func (c *Catalog) Endpoint() string { return c.endpoint }

func (c *Catalog) List(ctx context.Context) ([]v1.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, c.fetchError(err)
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, c.fetchError(err)
	}
	defer f.Close()

	records, err := decode(f, c.Path)
	if err != nil {
		return nil, c.fetchError(fmt.Errorf("%w: %v", db.ErrDecode, err))
	}

	products := make([]v1.Product, 0, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			c.logger.Warn().Err(err).Str("id", records[i].ID.String()).Str("path", c.Path).Msg("skipping invalid product")
			continue
		}
		products = append(products, records[i])
	}
	return products, nil
}

// decode picks the format from the file extension. Anything that is not
// .json is read as YAML.
func decode(r io.Reader, path string) ([]v1.Product, error) {
	var records []v1.Product
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err := json.NewDecoder(r).Decode(&records)
		return records, err
	}
	err := yaml.NewDecoder(r).Decode(&records)
	if err == io.EOF {
		return nil, nil
	}
	return records, err
}

func (c *Catalog) fetchError(err error) *db.FetchError {
	return &db.FetchError{Endpoint: c.endpoint, Err: err}
}
