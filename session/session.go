// Package session — aktif sunucu görünümünün load/reload state machine'i.
//
// Session, o an açık olan sunucunun yerel otoritesidir: sunucu metadata'sı,
// post feed'i ve mesaj akışının local kopyalarını o tutar. Kullanıcı cache'i
// ise session'a değil client session ömrüne bağlıdır — sunucu değiştirmek
// post/mesaj listelerini temizler ama kullanıcı cache'ini korur.
//
// Eşzamanlılık modeli:
// Session tek bir UI akışı tarafından sürülür; remote çağrılar suspension
// point'tir ve sonuçları birbirinden bağımsız olan her yerde paralel koşar.
// Local state mutex ile korunur, her load bir generation numarası taşır ve
// sonuçlar commit anında "hâlâ güncel load bu mu?" kontrolünden geçer —
// araya yeni bir sunucu seçimi girdiyse geç gelen sonuçlar ATILIR.
// Gerçek bir network iptali yoktur; tek iptal mekanizması budur.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/akinalp/dischord/client"
	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/pkg/cache"
)

// State, session'ın yaşam döngüsündeki durumu.
type State int

const (
	// StateIdle — henüz sunucu seçilmedi.
	StateIdle State = iota
	// StateLoading — seçilen sunucunun verisi yolda.
	StateLoading
	// StateReady — sunucu verisi yüklendi, render edilebilir.
	StateReady
	// StateFailed — sunucu metadata'sı yüklenemedi. Bu sunucu id'si için
	// terminal'dir; otomatik retry yapılmaz.
	StateFailed
)

// String, State'in okunabilir adını döner (log ve test çıktıları için).
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrSuperseded — yükleme bitmeden başka bir sunucu seçildi,
	// bu load'un sonuçları atıldı. Çağıran için bilgilendiricidir,
	// kullanıcıya gösterilecek bir hata değildir.
	ErrSuperseded = errors.New("load superseded by a newer server selection")

	// ErrNotReady — mutation için hazır bir sunucu görünümü yok.
	ErrNotReady = errors.New("no server loaded")
)

// Session, tek kullanıcının client oturumu.
//
// Bootstrap parametreleri (aktif kullanıcı, katılınan sunucu id'leri)
// constructor'dan gelir — ambient global YOK. Persisted storage'dan
// okuma/yazma bu katmanın dışındadır.
type Session struct {
	remote   client.RemoteService
	users    *client.UserCache
	resolver *client.Resolver

	mu        sync.Mutex
	user      models.User
	serverIDs []string // katılınan sunucular (sidebar listesi)

	gen       uint64 // load generation — commit anında karşılaştırılır
	requested string // son istenen sunucu id'si (aynı id tekrar seçilirse no-op)
	state     State
	server    models.Server
	posts     []models.Post
	messages  []models.Message
	votes     map[string]int // kendi oyum, post id → {-1,0,1}
}

// New, constructor. user aktif kullanıcı, serverIDs persisted storage'dan
// gelen "katıldığım sunucular" listesidir (boş olabilir).
func New(remote client.RemoteService, user models.User, serverIDs []string) *Session {
	users := cache.New[string, models.User]()
	// Kendi kaydımız zaten elimizde — cache'e peşin koy.
	users.Set(user.ID, user)

	return &Session{
		remote:    remote,
		users:     users,
		resolver:  client.NewResolver(users, remote),
		user:      user,
		serverIDs: append([]string(nil), serverIDs...),
		state:     StateIdle,
		votes:     make(map[string]int),
	}
}

// Open, bir sunucu seçer ve görünümünü yükler.
//
// Yükleme protokolü:
//  1. Önceki sunucunun post/mesaj listeleri temizlenir (iki sunucunun
//     içeriği asla karışık render edilmez).
//  2. Sunucu metadata'sı fetch edilir — başarısızlık bu id için terminal
//     Failed durumudur.
//  3. Post'lar ve mesaj listesi eşzamanlı fetch edilir; tek bir post'un
//     hatası o post'u sessizce düşürür.
//  4. Üye ∪ post yazarı ∪ mesaj yazarı id'leri tek batch'te çözümlenir.
//  5. Ready'ye geçilir — ama sadece bu load hâlâ günceldeyse.
//
// Aynı, halihazırda istenmiş sunucu id'sini tekrar seçmek no-op'tur
// (Failed durumu dahil: otomatik retry yok).
func (s *Session) Open(ctx context.Context, serverID string) error {
	s.mu.Lock()
	if serverID == s.requested {
		s.mu.Unlock()
		return nil
	}
	s.requested = serverID
	s.gen++
	gen := s.gen
	s.state = StateLoading
	s.server = models.Server{}
	s.posts = nil
	s.messages = nil
	s.votes = make(map[string]int)
	s.mu.Unlock()

	log.Printf("[session] loading server %s", serverID)

	server, err := s.remote.GetServer(ctx, serverID)
	if err != nil {
		s.commit(gen, func() {
			s.state = StateFailed
		})
		return fmt.Errorf("load server %s: %w", serverID, err)
	}

	// Post'lar ve mesajlar birbirinden bağımsız — hepsi aynı anda yolda.
	// Post dizisi index-stable doldurulur ki sunucunun verdiği sıra korunsun.
	var (
		wg       sync.WaitGroup
		results  = make([]*models.Post, len(server.PostIDs))
		messages []models.Message
	)

	for i, postID := range server.PostIDs {
		wg.Add(1)
		go func(i int, postID string) {
			defer wg.Done()

			post, err := s.remote.GetPost(ctx, serverID, postID)
			if err != nil {
				// Tek post'un hatası feed'i düşürmez — post atlanır.
				log.Printf("[session] dropping post %s: %v", postID, err)
				return
			}
			results[i] = &post
		}(i, postID)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		msgs, err := s.remote.GetMessages(ctx, serverID)
		if err != nil {
			// Mesaj akışı best-effort — hata boş listeye düşer.
			log.Printf("[session] failed to load messages for server %s: %v", serverID, err)
			return
		}
		messages = msgs
	}()

	wg.Wait()

	posts := make([]models.Post, 0, len(results))
	for _, p := range results {
		if p != nil {
			posts = append(posts, *p)
		}
	}

	// İsim çözümlemesi: üyeler + post yazarları + mesaj yazarları tek küme.
	authorIDs := make([]string, 0, len(posts)+len(messages))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.AuthorID)
	}
	for _, m := range messages {
		authorIDs = append(authorIDs, m.AuthorID)
	}
	s.resolver.Resolve(ctx, client.IDSet(server.MemberIDs, authorIDs))

	if !s.commit(gen, func() {
		s.state = StateReady
		s.server = server
		s.posts = posts
		s.messages = messages
	}) {
		return ErrSuperseded
	}

	log.Printf("[session] server %s ready (%d posts, %d messages)", serverID, len(posts), len(messages))
	return nil
}

// JoinServer, id ile sunucuya katılır: sunucunun varlığı doğrulanır,
// id yerel listeye eklenir ve görünüm açılır. Bilinmeyen id doğrudan
// lookup akışı olduğu için hata yüzeye çıkar (not found mesajı).
func (s *Session) JoinServer(ctx context.Context, serverID string) error {
	if _, err := s.remote.GetServer(ctx, serverID); err != nil {
		return fmt.Errorf("join server %s: %w", serverID, err)
	}

	s.addServerID(serverID)
	return s.Open(ctx, serverID)
}

// CreateServer, yeni sunucu oluşturur, listeye ekler ve görünümünü açar.
func (s *Session) CreateServer(ctx context.Context, name string) (models.Server, error) {
	req := models.CreateServerRequest{Name: name, OwnerID: s.user.ID}
	if err := req.Validate(); err != nil {
		return models.Server{}, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	server, err := s.remote.CreateServer(ctx, req.Name, req.OwnerID)
	if err != nil {
		return models.Server{}, err
	}

	s.addServerID(server.ID)
	if err := s.Open(ctx, server.ID); err != nil {
		return server, err
	}
	return server, nil
}

// AddFriend, aktif kullanıcıya arkadaş ekler (pass-through, local state yok).
func (s *Session) AddFriend(ctx context.Context, friendID string) error {
	req := models.AddFriendRequest{FriendID: friendID}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.remote.AddFriend(ctx, s.user.ID, req.FriendID)
}

// Friends, aktif kullanıcının arkadaş listesini döner (pass-through).
func (s *Session) Friends(ctx context.Context) ([]models.User, error) {
	return s.remote.GetFriends(ctx, s.user.ID)
}

// commit, load sonuçlarını "hâlâ güncel mi" kontrolüyle uygular.
// gen artık güncel değilse (araya yeni bir Open girdi) apply çağrılmaz
// ve false döner — geç gelen sonuçlar böylece atılır.
func (s *Session) commit(gen uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		log.Printf("[session] discarding superseded load (gen %d, current %d)", gen, s.gen)
		return false
	}
	apply()
	return true
}

func (s *Session) addServerID(serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.serverIDs {
		if id == serverID {
			return
		}
	}
	s.serverIDs = append(s.serverIDs, serverID)
}

// ─── Read accessor'ları — render bunları okur ───

// State, session'ın anlık durumunu döner.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User, aktif kullanıcıyı döner.
func (s *Session) User() models.User {
	return s.user
}

// ServerIDs, katılınan sunucu id'lerinin kopyasını döner (sidebar).
func (s *Session) ServerIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.serverIDs...)
}

// Server, yüklü sunucunun metadata'sını döner.
func (s *Session) Server() models.Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.server
}

// Posts, yüklü post feed'inin kopyasını döner.
func (s *Session) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Post(nil), s.posts...)
}

// Messages, yüklü mesaj akışının kopyasını döner.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// Vote, kullanıcının bir post'taki bilinen oyunu döner (0 = oy yok).
func (s *Session) Vote(postID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.votes[postID]
}

// DisplayName, bir kullanıcı id'sinin görünen adını döner.
// Cache-miss "unknown" demektir — hata değil: id'nin ilk 8 karakteri
// placeholder olarak gösterilir, görünüm bloklanmaz.
func (s *Session) DisplayName(userID string) string {
	if user, ok := s.users.Get(userID); ok {
		return user.Username
	}
	if len(userID) > 8 {
		return userID[:8]
	}
	return userID
}

// Users, paylaşılan kullanıcı cache'ini döner (test ve render erişimi).
func (s *Session) Users() *client.UserCache {
	return s.users
}
