package catalog

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"gorm.io/gorm"
)

// variantTable binds a media type to its gorm model
type variantTable struct {
	newItem func() model.Item
	find    func(q *gorm.DB) ([]model.Item, error)
}

func tableOf[T any, PT interface {
	*T
	model.Item
}]() variantTable {
	return variantTable{
		newItem: func() model.Item {
			return PT(new(T))
		},
		find: func(q *gorm.DB) ([]model.Item, error) {
			var rows []T
			if err := q.Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			items := make([]model.Item, len(rows))
			for i := range rows {
				items[i] = PT(&rows[i])
			}
			return items, nil
		},
	}
}

var variantTables = map[model.MediaType]variantTable{
	model.MediaTypeCD:        tableOf[model.CD](),
	model.MediaTypeDVD:       tableOf[model.DVD](),
	model.MediaTypeBook:      tableOf[model.Book](),
	model.MediaTypeBoardGame: tableOf[model.BoardGame](),
}

func lookup(t model.MediaType) (variantTable, error) {
	table, ok := variantTables[t]
	if !ok {
		return variantTable{}, fmt.Errorf("catalog: unknown media type %q", t)
	}
	return table, nil
}

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) FindAll(ctx context.Context, db *gorm.DB, t model.MediaType) ([]model.Item, error) {
	table, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return table.find(db.WithContext(ctx))
}

func (r *CatalogRepository) FindAvailable(ctx context.Context, db *gorm.DB, t model.MediaType) ([]model.Item, error) {
	table, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return table.find(db.WithContext(ctx).Where("available = ?", true))
}

// FindByID returns gorm.ErrRecordNotFound when the item does not exist
func (r *CatalogRepository) FindByID(ctx context.Context, db *gorm.DB, ref model.ItemRef) (model.Item, error) {
	table, err := lookup(ref.Type)
	if err != nil {
		return nil, err
	}

	item := table.newItem()
	if err := db.WithContext(ctx).Where("id = ?", ref.ID).First(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindAvailableByID returns gorm.ErrRecordNotFound when the item does not exist or is lent
func (r *CatalogRepository) FindAvailableByID(ctx context.Context, db *gorm.DB, ref model.ItemRef) (model.Item, error) {
	table, err := lookup(ref.Type)
	if err != nil {
		return nil, err
	}

	item := table.newItem()
	err = db.WithContext(ctx).
		Where("id = ? AND available = ?", ref.ID, true).
		First(item).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CatalogRepository) Create(ctx context.Context, db *gorm.DB, item model.Item) error {
	if _, err := lookup(item.Type()); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(item).Error
}

// Delete reports whether a row was removed
func (r *CatalogRepository) Delete(ctx context.Context, db *gorm.DB, ref model.ItemRef) (bool, error) {
	table, err := lookup(ref.Type)
	if err != nil {
		return false, err
	}

	result := db.WithContext(ctx).Where("id = ?", ref.ID).Delete(table.newItem())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Claim marks an available item as lent.
// The availability check and the update are a single statement, so two
// concurrent claims on the same item cannot both succeed.
// Board games are never claimed.
func (r *CatalogRepository) Claim(ctx context.Context, db *gorm.DB, ref model.ItemRef) (bool, error) {
	table, err := lookup(ref.Type)
	if err != nil {
		return false, err
	}
	if !ref.Type.IsCirculating() {
		return false, nil
	}

	result := db.WithContext(ctx).
		Model(table.newItem()).
		Where("id = ? AND available = ?", ref.ID, true).
		Update("available", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Release puts an item back on the shelf. Releasing an available item is a no-op.
// Reports false when the item no longer exists.
func (r *CatalogRepository) Release(ctx context.Context, db *gorm.DB, ref model.ItemRef) (bool, error) {
	table, err := lookup(ref.Type)
	if err != nil {
		return false, err
	}

	result := db.WithContext(ctx).
		Model(table.newItem()).
		Where("id = ?", ref.ID).
		Update("available", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
