package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/drcity/portal/api/internal/catalog"
	"github.com/drcity/portal/api/internal/config"
	"github.com/drcity/portal/api/internal/database"
	"github.com/jackc/pgx/v5"
)

// ErrCatalogNotFound is returned when a source holds no catalog document.
var ErrCatalogNotFound = errors.New("catalog document not found")

// NewCatalogSource returns the catalog source selected by cfg. db is only
// used by the postgres source and may be nil otherwise.
func NewCatalogSource(cfg config.CatalogConfig, db database.Querier) (catalog.Source, error) {
	switch cfg.Source {
	case config.CatalogSourceEmbedded, "":
		return NewEmbeddedCatalogSource(), nil
	case config.CatalogSourceFile:
		return NewFileCatalogSource(cfg.Path), nil
	case config.CatalogSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres catalog source requires a database connection")
		}
		return NewPostgresCatalogSource(db), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

type embeddedCatalogSource struct{}

// NewEmbeddedCatalogSource serves the catalog compiled into the binary.
func NewEmbeddedCatalogSource() catalog.Source {
	return embeddedCatalogSource{}
}

func (embeddedCatalogSource) Name() string { return config.CatalogSourceEmbedded }

func (embeddedCatalogSource) LoadDocument(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return catalog.DefaultDocument(), nil
}

type fileCatalogSource struct {
	path string
}

// NewFileCatalogSource reads the catalog from a JSON file on disk.
func NewFileCatalogSource(path string) catalog.Source {
	return &fileCatalogSource{path: path}
}

func (s *fileCatalogSource) Name() string { return "file " + s.path }

func (s *fileCatalogSource) LoadDocument(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}

// latestCatalogQuery reads the newest catalog document. The column is json,
// not jsonb, because jsonb reorders object keys and site and flat order is
// taken from the document.
const latestCatalogQuery = `
	SELECT document::text
	FROM site_catalog
	ORDER BY created_at DESC, id DESC
	LIMIT 1
`

type postgresCatalogSource struct {
	db database.Querier
}

// NewPostgresCatalogSource reads the newest row of the site_catalog table.
func NewPostgresCatalogSource(db database.Querier) catalog.Source {
	return &postgresCatalogSource{db: db}
}

func (s *postgresCatalogSource) Name() string { return config.CatalogSourcePostgres }

func (s *postgresCatalogSource) LoadDocument(ctx context.Context) ([]byte, error) {
	var document string
	if err := s.db.QueryRow(ctx, latestCatalogQuery).Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: site_catalog is empty", ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("failed to query site catalog: %w", err)
	}
	return []byte(document), nil
}
