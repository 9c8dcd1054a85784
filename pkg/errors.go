// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri tanımlarız; karşılaştırma string yerine errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Aynı sentinel'ler iki yönde de kullanılır:
//   - Server tarafı: service katmanı döner, handler HTTP status'a çevirir
//   - Client tarafı: HTTP status'tan geri bu sentinel'lere map'lenir,
//     böylece session/resolver kodu transport detayı bilmeden
//     errors.Is(err, pkg.ErrNotFound) ile "yokluk" kontrolü yapabilir
package pkg

import "errors"

// Domain-level error'lar.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")

	// ErrUnavailable, network/transport seviyesindeki hataları işaretler —
	// istek servise hiç ulaşmadı veya yanıt okunamadı.
	// Batch resolution bu hatayı yutar, tekil load/mutation'lar yüzeye çıkarır.
	ErrUnavailable = errors.New("service unavailable")
)
