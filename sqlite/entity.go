package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	parasite "github.com/trstickland/parasite-static"
)

// Compile-time interface verification.
var _ parasite.EntityService = (*EntityService)(nil)

// EntityService implements parasite.EntityService using SQLite.
type EntityService struct {
	db *DB
}

// NewEntityService creates a new EntityService.
func NewEntityService(db *DB) *EntityService {
	return &EntityService{db: db}
}

// CreateEntity registers a new entity.
func (s *EntityService) CreateEntity(ctx context.Context, entity *parasite.Entity) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	entity.ID = uuid.New().String()
	entity.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entities (id, species, bioproject, created_at)
		VALUES (?, ?, ?, ?)
	`, entity.ID, entity.Species, entity.Bioproject,
		entity.CreatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return parasite.Errorf(parasite.EINVALID, "entity %s already registered", entity.PageName())
	}
	return err
}

// FindEntities retrieves entities matching the filter, ordered by
// species then bioproject.
func (s *EntityService) FindEntities(ctx context.Context, filter parasite.EntityFilter) ([]*parasite.Entity, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, species, bioproject, created_at FROM entities WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Species != nil {
		query.WriteString(" AND species = ?")
		args = append(args, *filter.Species)
	}
	if filter.Bioproject != nil {
		query.WriteString(" AND bioproject = ?")
		args = append(args, *filter.Bioproject)
	}

	query.WriteString(" ORDER BY species, bioproject")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*parasite.Entity
	for rows.Next() {
		var entity parasite.Entity
		var createdAt string

		if err := rows.Scan(&entity.ID, &entity.Species, &entity.Bioproject, &createdAt); err != nil {
			return nil, err
		}

		entity.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		entities = append(entities, &entity)
	}

	return entities, rows.Err()
}

// DeleteEntity permanently removes an entity.
func (s *EntityService) DeleteEntity(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entities WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return parasite.Errorf(parasite.ENOTFOUND, "entity not found")
	}

	return nil
}
