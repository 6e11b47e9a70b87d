package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки проверки токена. Различимы внутри сервера, но на границе HTTP
// все три сворачиваются в один ответ 401 без уточнения причины.
var (
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Claims — структура утверждений: стандартные плюс идентификатор
// и email пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// Manager подписывает и проверяет токены с процессным секретом.
// Secret и TTL неизменяемы после создания.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен с issued_at = сейчас и expires_at = сейчас + TTL.
func (m *Manager) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return t.SignedString(m.secret)
}

// Verify разбирает и проверяет токен, возвращая утверждения.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !t.Valid {
		return nil, ErrSignatureInvalid
	}
	return claims, nil
}
