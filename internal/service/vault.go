package service

import (
	"PassKeeper/internal/crypto"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrEmptyInput — пустой title или секрет.
	ErrEmptyInput = errors.New("title and secret must be non-empty")
	// ErrEntryNotFound — запись не существует или принадлежит другому
	// пользователю; случаи неразличимы, чтобы нельзя было прощупывать чужие ID.
	ErrEntryNotFound = errors.New("entry not found")
)

// VaultService инкапсулирует бизнес-логику работы с записями хранилища.
// Все операции выполняются от имени владельца: userID берётся из проверенного
// токена, клиентскому owner id никогда не доверяем.
type VaultService struct {
	repo   repo.EntryRepository
	cipher *crypto.Cipher
	logger *zap.SugaredLogger
}

func NewVaultService(r repo.EntryRepository, c *crypto.Cipher, logger *zap.SugaredLogger) *VaultService {
	return &VaultService{repo: r, cipher: c, logger: logger}
}

// Create шифрует секрет и сохраняет новую запись владельца.
func (s *VaultService) Create(ctx context.Context, userID int64, title, secret string) (*model.Entry, error) {
	if strings.TrimSpace(title) == "" || secret == "" {
		return nil, ErrEmptyInput
	}

	cipherText, iv, err := s.cipher.Encrypt([]byte(secret))
	if err != nil {
		return nil, err
	}

	e := &model.Entry{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  title,
		Cipher: cipherText,
		IV:     iv,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List возвращает все записи владельца. Секреты не расшифровываются:
// раскрытие — отдельная явная операция Reveal.
func (s *VaultService) List(ctx context.Context, userID int64) ([]model.Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update перешифровывает секрет записи со свежим IV. Старый IV не
// переиспользуется никогда.
func (s *VaultService) Update(ctx context.Context, userID int64, id, secret string) error {
	if secret == "" {
		return ErrEmptyInput
	}

	cipherText, iv, err := s.cipher.Encrypt([]byte(secret))
	if err != nil {
		return err
	}

	rows, err := s.repo.UpdateSecret(ctx, userID, id, cipherText, iv)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete удаляет запись владельца.
func (s *VaultService) Delete(ctx context.Context, userID int64, id string) error {
	rows, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Reveal расшифровывает одну запись по ID с повторной проверкой владельца.
func (s *VaultService) Reveal(ctx context.Context, userID int64, id string) (string, error) {
	e, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEntryNotFound
		}
		return "", err
	}

	plain, err := s.cipher.Decrypt(e.Cipher, e.IV)
	if err != nil {
		s.logger.Errorw("Reveal: decrypt failed", "entry_id", id, "error", err)
		return "", err
	}
	return string(plain), nil
}
