package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword возвращает bcrypt-дайджест пароля; соль генерируется
// библиотекой и встроена в дайджест.
func HashPassword(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword сверяет пароль с дайджестом. Неверный пароль — это false,
// а не ошибка.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
