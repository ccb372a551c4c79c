package chatpager

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// LoadItems snapshots every row matched by db into items, ordered by orderings.
// T must be a model gorm can scan into.
//
// Usage:
//
//	homes, err := chatpager.LoadItems[Home](ctx, db.Where("owner = ?", owner),
//		chatpager.OrderBy{Column: "name", Direction: chatpager.DirectionASC})
func LoadItems[T ListItem](ctx context.Context, db *gorm.DB, orderBy ...OrderBy) ([]T, error) {
	orderings := Orderings(orderBy)

	err := orderings.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot load items: %w", err)
	}

	var items []T
	err = orderings.Apply(db.WithContext(ctx)).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("cannot load items: %w", err)
	}

	return items, nil
}

// FromQuery loads items with LoadItems and wraps the snapshot into a PaginatedList.
// Later changes to the underlying table do not affect the returned list.
func FromQuery[T ListItem](ctx context.Context, db *gorm.DB, options ListOptions, orderBy ...OrderBy) (*PaginatedList[T], error) {
	items, err := LoadItems[T](ctx, db, orderBy...)
	if err != nil {
		return nil, err
	}

	return New(items, options), nil
}
