// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler —
// hem server tarafı (handlers/services) hem client tarafı (client/session)
// aynı struct'ları kullanır, böylece wire format tek bir yerde tanımlıdır.
//
// Go'da `json:"username"` gibi tag'ler, struct field'larının JSON'a
// nasıl serialize/deserialize edileceğini belirler.
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// User, bir kullanıcıyı temsil eder.
// Kullanıcılar oluşturulduktan sonra read-mostly'dir — bu sistemde
// username/email güncellemesi yoktur, client cache'i bu yüzden TTL'siz çalışır.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest, kayıt olurken frontend'den gelen veri.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Validate, CreateUserRequest'in geçerli olup olmadığını kontrol eder.
// Validation kuralları:
//   - Username: 3-32 karakter, alfanumerik + alt çizgi
//   - Email: zorunlu, kabaca "@" içermeli (gerçek doğrulama mail ile yapılmaz)
func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 32 {
		return fmt.Errorf("username must be between 3 and 32 characters")
	}

	for _, ch := range r.Username {
		if !isValidUsernameChar(ch) {
			return fmt.Errorf("username can only contain letters, numbers, and underscores")
		}
	}

	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}

	return nil
}

// AddFriendRequest, arkadaş ekleme isteği.
// Arkadaşlık bu sistemde simetriktir ve onay akışı yoktur —
// kayıt her iki yönde birden oluşturulur.
type AddFriendRequest struct {
	FriendID string `json:"friend_id"`
}

// Validate, AddFriendRequest'in geçerli olup olmadığını kontrol eder.
func (r *AddFriendRequest) Validate() error {
	r.FriendID = strings.TrimSpace(r.FriendID)
	if r.FriendID == "" {
		return fmt.Errorf("friend_id is required")
	}
	return nil
}

// isValidUsernameChar, username'de izin verilen karakterleri kontrol eder.
func isValidUsernameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
