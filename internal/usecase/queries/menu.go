package queries

import (
	"context"

	"cafe-kiosk/internal/domain/catalog"
)

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/queries/menu.go -package=queries

type MenuQueries interface {
	ListMenu(ctx context.Context) ([]MenuCategoryView, error)
	// KindAt maps 1-based category and item positions from ListMenu to a kind.
	KindAt(ctx context.Context, categoryPosition, itemPosition int) (catalog.Kind, error)
}

type menuQueriesImpl struct {
	catalog *catalog.Catalog
}

func NewMenuQueries(cat *catalog.Catalog) MenuQueries {
	return &menuQueriesImpl{catalog: cat}
}

func (q *menuQueriesImpl) ListMenu(_ context.Context) ([]MenuCategoryView, error) {
	categories := q.catalog.Categories()
	out := make([]MenuCategoryView, 0, len(categories))
	for i, c := range categories {
		entries := q.catalog.EntriesIn(c)
		items := make([]MenuItemView, 0, len(entries))
		for j, e := range entries {
			items = append(items, toMenuItemView(j+1, e))
		}
		out = append(out, MenuCategoryView{
			Position: i + 1,
			Category: c.String(),
			Title:    c.Title(),
			Items:    items,
		})
	}
	return out, nil
}

func (q *menuQueriesImpl) KindAt(_ context.Context, categoryPosition, itemPosition int) (catalog.Kind, error) {
	return q.catalog.KindAt(categoryPosition, itemPosition)
}

func toMenuItemView(position int, e catalog.Entry) MenuItemView {
	dims := e.Dimensions()
	dimViews := make([]DimensionView, 0, len(dims))
	for _, d := range dims {
		opts := d.Options()
		optViews := make([]OptionView, 0, len(opts))
		for k, o := range opts {
			optViews = append(optViews, OptionView{
				Position:   k + 1,
				Label:      o.Label(),
				PriceDelta: o.PriceDelta(),
			})
		}
		dimViews = append(dimViews, DimensionView{Name: d.Name(), Options: optViews})
	}
	return MenuItemView{
		Position:   position,
		Kind:       e.Kind().String(),
		Name:       e.Name(),
		BasePrice:  e.BasePrice(),
		Dimensions: dimViews,
	}
}
