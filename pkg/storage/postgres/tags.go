package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	tagsTable = "tags"
)

func (p *PgSQL) Tags(ctx context.Context) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) TagByID(ctx context.Context, ID domain.TagID) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.From(tagsTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	tag := row.ToDomain()

	return &tag, nil
}

func (p *PgSQL) TagsByIDs(ctx context.Context, IDs []domain.TagID) ([]domain.Tag, error) {
	if len(IDs) == 0 {
		return []domain.Tag{}, nil
	}

	ids := make([]int64, 0, len(IDs))
	for _, id := range IDs {
		ids = append(ids, int64(id))
	}

	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("id").In(ids)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by ids: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

// StoreTags inserts tags and skips rows clashing with an existing name, color
// or slug.
func (p *PgSQL) StoreTags(ctx context.Context, tags ...domain.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	rows := make([]PgTag, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, PgTag{Name: t.Name, Color: t.Color, Slug: t.Slug})
	}

	res, err := p.Builder.Insert(tagsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store tags into pg: %w", err)
	}

	return rowsAffected(res)
}

func pgTagsToDomain(rows []PgTag) []domain.Tag {
	tags := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, rows[i].ToDomain())
	}

	return tags
}
