package repo

import (
	"PassKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// EntryRepository — контракт доступа к записям хранилища.
// Каждый метод фильтрует по владельцу: запись видна и изменяема только им.
type EntryRepository interface {
	// Create сохраняет новую запись.
	Create(ctx context.Context, e *model.Entry) error

	// GetByID возвращает запись пользователя по ID.
	// Чужая или несуществующая запись — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, userID int64, id string) (*model.Entry, error)

	// ListByUser возвращает все записи пользователя.
	ListByUser(ctx context.Context, userID int64) ([]model.Entry, error)

	// UpdateSecret перезаписывает шифртекст и IV записи пользователя.
	// Возвращает число затронутых строк (0 — не найдено / не владелец).
	UpdateSecret(ctx context.Context, userID int64, id string, cipher, iv []byte) (int64, error)

	// Delete удаляет запись пользователя. Возвращает число затронутых строк.
	Delete(ctx context.Context, userID int64, id string) (int64, error)
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepository создаёт реализацию репозитория для Entry.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) Create(ctx context.Context, e *model.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Entry, error) {
	var e model.Entry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	var list []model.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *entryRepo) UpdateSecret(ctx context.Context, userID int64, id string, cipher, iv []byte) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Entry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"cipher": cipher, "iv": iv})
	return tx.RowsAffected, tx.Error
}

func (r *entryRepo) Delete(ctx context.Context, userID int64, id string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Entry{})
	return tx.RowsAffected, tx.Error
}
