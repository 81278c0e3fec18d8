package repository

import (
	"context"
	"errors"

	"stockcore/internal/domain/catalog"
	"stockcore/internal/infra"
	"stockcore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

const resourceColumns = `id, tenant_id, name, sku, max_units, unbounded`

func (r *CatalogRepository) FindResource(ctx context.Context, id uuid.UUID) (*catalog.Resource, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	return scanResource(row)
}

func (r *CatalogRepository) FindResourceForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Resource, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1 FOR UPDATE`, id)
	return scanResource(row)
}

// FindResourcesForUpdate locks the catalog rows ordered by id so concurrent
// multi-resource reservations cannot deadlock, then returns all of them.
// Any id without a matching row yields KindNotFound.
func (r *CatalogRepository) FindResourcesForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Resource, error) {
	resources := make(map[uuid.UUID]*catalog.Resource, len(ids))
	if len(ids) == 0 {
		return resources, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock resources", err)
	}
	defer rows.Close()

	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources[res.ID()] = res
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate locked resources", err)
	}

	for _, id := range ids {
		if _, ok := resources[id]; !ok {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found: "+id.String(), nil)
		}
	}
	return resources, nil
}

type resourceScanner interface {
	Scan(dest ...any) error
}

func scanResource(row resourceScanner) (*catalog.Resource, error) {
	var (
		id, tenantID uuid.UUID
		name, sku    string
		maxUnits     int64
		unbounded    bool
	)
	if err := row.Scan(&id, &tenantID, &name, &sku, &maxUnits, &unbounded); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan resource", err)
	}

	res, err := catalog.NewResource(id, tenantID, name, sku, maxUnits, unbounded)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "persisted resource failed validation", err)
	}
	return res, nil
}
