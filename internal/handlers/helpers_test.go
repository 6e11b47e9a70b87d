package handlers_test

import (
	"PassKeeper/internal/config"
	"PassKeeper/internal/crypto"
	"PassKeeper/internal/handlers"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"
	"PassKeeper/internal/service"
	"PassKeeper/internal/token"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockEntryRepo struct{ mock.Mock }

func (m *mockEntryRepo) Create(ctx context.Context, e *model.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *mockEntryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Entry, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Entry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEntryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Entry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEntryRepo) UpdateSecret(ctx context.Context, userID int64, id string, cipher, iv []byte) (int64, error) {
	args := m.Called(ctx, userID, id, cipher, iv)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockEntryRepo) Delete(ctx context.Context, userID int64, id string) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.EntryRepository = (*mockEntryRepo)(nil)

// --- Helpers ---
func testTokenManager() *token.Manager {
	return token.NewManager(testSecret, time.Hour)
}

func testCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	c, err := crypto.NewCipher(key)
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	return c
}

func newTestRouter(t *testing.T, ur repo.UserRepository, er repo.EntryRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur, bcrypt.MinCost)
	vaultSvc := service.NewVaultService(er, testCipher(t), logger)

	h := handlers.NewHandler(userSvc, vaultSvc, testTokenManager(), logger, cfg)
	return h.Router
}

func addAuthHeader(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	tok, err := testTokenManager().Issue(userID, "user@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}
