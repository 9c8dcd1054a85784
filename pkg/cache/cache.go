// Package cache — Generic in-memory key/value store.
//
// Store, client session'ı boyunca yaşayan entity cache'idir.
// TTL ve eviction YOKTUR — bu bilinçli bir karar: cache'lenen kayıtlar
// (kullanıcılar) oluşturulduktan sonra değişmez kabul edilir, bir kez
// fetch edilen kayıt session ömrü boyunca güvenilir. Sunucu değiştirmek
// cache'i temizlemez; kullanıcılar global'dir.
//
// Thread safety:
// sync.RWMutex ile korunur — birden fazla goroutine aynı anda okuyabilir,
// yazma sırasında tüm erişim bloklanır. Tüm yazmalar merge'dir (Set),
// kayıtlar immutable olduğu için yazmaların sırası önemsizdir.
package cache

import "sync"

// Store, generic in-memory key/value store.
//
// K ve V tip parametreleridir — store oluşturulurken concrete tipler belirtilir:
//
//	users := cache.New[string, models.User]()
//	users.Set("u1", user)
//	u, ok := users.Get("u1")
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New, boş bir Store oluşturur.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]V),
	}
}

// Get, key'e karşılık gelen değeri döner.
// İkinci dönüş değeri false ise key cache'te yok demektir —
// çağıran taraf bunu "unknown" olarak ele almalı, hata olarak değil.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.entries[key]
	return val, ok
}

// Has, key'in cache'te olup olmadığını döner.
func (s *Store[K, V]) Has(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[key]
	return ok
}

// Set, tek bir kaydı yazar. Mevcut kayıt üzerine yazılır (last-write-wins).
func (s *Store[K, V]) Set(key K, val V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = val
}

// SetMany, bir batch'in tüm sonuçlarını tek lock altında merge eder.
func (s *Store[K, V]) SetMany(vals map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range vals {
		s.entries[k] = v
	}
}

// Len, cache'teki kayıt sayısını döner.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
