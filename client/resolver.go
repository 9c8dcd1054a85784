// Batch Resolver — id kümesini kullanıcı cache'ine çözümler.
//
// Bir view yüklendiğinde referans verilen tüm kullanıcı id'leri
// (üyeler, post yazarları, mesaj yazarları) tek bir küme halinde buraya
// gelir. Cache'te olmayanlar paralel fetch edilir, başarılılar merge edilir.
//
// Resolve asla hata dönmez: tek bir id'nin fetch hatası loglanır ve
// yutulur, o id cache'te eksik kalır. Render tarafı cache-miss'i
// "unknown" olarak ele alır (placeholder gösterir), asla hard error değil.
package client

import (
	"context"
	"log"
	"sync"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg/cache"
)

// UserCache, resolver'ın doldurduğu, render'ın okuduğu paylaşılan cache tipi.
type UserCache = cache.Store[string, models.User]

// Resolver, eksik kullanıcı kayıtlarını batch halinde fetch eder.
// Stateless'tır — çağrılar arası hiçbir şey taşımaz, üst üste çağrılması
// güvenlidir (overlap'te yeniden fetch + last-write-wins merge).
type Resolver struct {
	users  *UserCache
	remote RemoteService
}

// NewResolver, constructor.
func NewResolver(users *UserCache, remote RemoteService) *Resolver {
	return &Resolver{
		users:  users,
		remote: remote,
	}
}

// Resolve, kümede olup cache'te olmayan her id için GetUser çağırır.
// Bir batch'in tüm fetch'leri eşzamanlı çalışır ve batch bir bütün
// olarak beklenir — çağıran, isim çözümlemesi tamamlanmadan render'a
// geçmez. Sonuçlar tek bir SetMany ile merge edilir.
func (r *Resolver) Resolve(ctx context.Context, ids map[string]struct{}) {
	// Sadece cache-miss olanlar fetch edilir — küme zaten tamamen
	// cache'teyse sıfır network çağrısı yapılır.
	var missing []string
	for id := range ids {
		if id == "" {
			continue
		}
		if !r.users.Has(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return
	}

	var (
		mu      sync.Mutex
		fetched = make(map[string]models.User, len(missing))
		wg      sync.WaitGroup
	)

	for _, id := range missing {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			user, err := r.remote.GetUser(ctx, id)
			if err != nil {
				// Yut: bu id çözümsüz kalır, batch devam eder.
				log.Printf("[resolver] failed to resolve user %s: %v", id, err)
				return
			}

			mu.Lock()
			fetched[id] = user
			mu.Unlock()
		}(id)
	}

	wg.Wait()

	if len(fetched) > 0 {
		r.users.SetMany(fetched)
	}
}

// IDSet, id listelerinden duplicate'leri düşürülmüş bir küme kurar.
// Boş string'ler elenir.
func IDSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, id := range list {
			if id != "" {
				set[id] = struct{}{}
			}
		}
	}
	return set
}
