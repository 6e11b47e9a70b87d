package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

// keyLen — длина ключа для AES‑256 (в байтах).
const keyLen = 32

// ErrDecryptionFailed возвращается, когда тройка ключ/IV/шифртекст
// невалидна или данные были изменены (не сошёлся тег аутентификации GCM).
var ErrDecryptionFailed = errors.New("decryption failed")

// Cipher шифрует секреты хранилища по AES‑GCM под единым процессным ключом.
// IV — внешний параметр: генерируется заново на каждый Encrypt и хранится
// рядом с шифртекстом записи.
type Cipher struct {
	gcm cipher.AEAD
}

// NewCipher создаёт Cipher из 32-байтового ключа.
// Неверная длина ключа — фатальная ошибка конфигурации на старте.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != keyLen {
		return nil, errors.New("vault key must be exactly 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{gcm: gcm}, nil
}

// Encrypt шифрует plain и возвращает шифртекст и свежий случайный IV.
func (c *Cipher) Encrypt(plain []byte) (ciphertext, iv []byte, err error) {
	iv = make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, err
	}
	ciphertext = c.gcm.Seal(nil, iv, plain, nil)
	return ciphertext, iv, nil
}

// Decrypt расшифровывает шифртекст с использованием сохранённого IV.
func (c *Cipher) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if len(iv) != c.gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}
	plain, err := c.gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}
