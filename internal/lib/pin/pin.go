// Package pin реализует хеширование и проверку PIN-кода дневника.
//
// PIN короче обычного пароля, поэтому хранится так же, как пароль:
// в виде bcrypt-хеша, открытое значение нигде не сохраняется.
package pin

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash принимает PIN-код и возвращает его bcrypt‑хэш.
func GetHash(pin string) (string, error) {
	const op = "pin.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым PIN-кодом.
//
// Возвращает nil, если PIN соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalPin string) error {
	const op = "pin.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPin)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
