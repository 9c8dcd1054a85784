// Mutation Reconciler — local-first yazma disiplini.
//
// Create/edit/delete/mesaj: önce remote çağrı, round-trip başarılıysa
// sunucunun otoriter sonucu local listeye merge edilir. Optimistic
// pre-merge YOK — UI çağrı sürerken pending/disabled gösterir.
// Başarısız mutation local state'i DEĞİŞTİRMEZ; hata çağırana döner,
// kullanıcının girdisi kaybolmaz.
//
// Tek istisna oylamadır: oy optimistic uygulanır (delta = yeni - eski),
// sunucudan tally yeniden fetch edilmez — client kendi delta aritmetiğine
// güvenir. Yazma başarısız olursa delta GERİ ALINIR. (Kaynak davranış geri
// almıyordu; bu düpedüz tutarsızlık bırakan bir açıktı, burada kapatıldı.)
//
// Her commit, load'lardaki generation kontrolünden geçer: mutation
// sürerken kullanıcı sunucu değiştirdiyse sonuç yanlış listeye yazılmaz.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/dischord/client"
	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
)

// CreatePost, yeni post oluşturur ve başarıda feed'in başına ekler
// (newest-first). Yazar cache'te yoksa fırsatçı çözümlenir.
func (s *Session) CreatePost(ctx context.Context, title, body string) (models.Post, error) {
	serverID, gen, err := s.activeServer()
	if err != nil {
		return models.Post{}, err
	}

	req := models.CreatePostRequest{AuthorID: s.user.ID, Title: title, Body: body}
	if err := req.Validate(); err != nil {
		return models.Post{}, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.remote.CreatePost(ctx, serverID, req.AuthorID, req.Title, req.Body)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.commit(gen, func() {
		s.posts = append([]models.Post{post}, s.posts...)
		s.server.PostIDs = append(s.server.PostIDs, post.ID)
	})
	s.resolver.Resolve(ctx, client.IDSet([]string{post.AuthorID}))

	return post, nil
}

// EditPost, bir post'u günceller ve başarıda local listedeki kaydı
// yerinde değiştirir — sıralama korunur, düzenleme yeniden sıralamaz.
func (s *Session) EditPost(ctx context.Context, postID, title, body string) (models.Post, error) {
	serverID, gen, err := s.activeServer()
	if err != nil {
		return models.Post{}, err
	}
	if err := s.requireOwn(postID); err != nil {
		return models.Post{}, err
	}

	req := models.UpdatePostRequest{Title: title, Body: body}
	if err := req.Validate(); err != nil {
		return models.Post{}, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.remote.UpdatePost(ctx, serverID, postID, req.Title, req.Body)
	if err != nil {
		return models.Post{}, fmt.Errorf("edit post %s: %w", postID, err)
	}

	s.commit(gen, func() {
		for i := range s.posts {
			if s.posts[i].ID == post.ID {
				s.posts[i] = post
				break
			}
		}
	})

	return post, nil
}

// DeletePost, bir post'u siler. Silme geri alınamaz — confirmed false ise
// hiçbir çağrı yapılmaz (onay diyaloğu çağıranın sorumluluğudur).
func (s *Session) DeletePost(ctx context.Context, postID string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: delete requires confirmation", pkg.ErrBadRequest)
	}

	serverID, gen, err := s.activeServer()
	if err != nil {
		return err
	}
	if err := s.requireOwn(postID); err != nil {
		return err
	}

	if err := s.remote.DeletePost(ctx, serverID, postID); err != nil {
		return fmt.Errorf("delete post %s: %w", postID, err)
	}

	s.commit(gen, func() {
		for i := range s.posts {
			if s.posts[i].ID == postID {
				s.posts = append(s.posts[:i], s.posts[i+1:]...)
				break
			}
		}
		delete(s.votes, postID)
	})

	return nil
}

// CastVote, bir post'a oy verir — toggle semantiği:
// sahip olunan değeri tekrar vermek oyu geri çeker (0'a döner),
// karşıt değer mevcut oyun yerine geçer.
//
// Tally optimistic güncellenir: network çağrısı tamamlanmadan local
// tally'ye (yeni - eski) eklenir. Çağrı başarısız olursa delta geri
// alınır ve bilinen oy durumu eski değerine döner.
func (s *Session) CastVote(ctx context.Context, postID string, value int) error {
	if value != models.VoteDown && value != models.VoteUp {
		return fmt.Errorf("%w: vote value must be -1 or 1", pkg.ErrBadRequest)
	}

	serverID, gen, err := s.activeServer()
	if err != nil {
		return err
	}

	s.mu.Lock()
	old, known := s.votes[postID]
	s.mu.Unlock()

	// Oy durumu henüz bilinmiyorsa sunucudan öğren — not-found "oy yok" demektir.
	if !known {
		vote, err := s.remote.GetVote(ctx, serverID, postID, s.user.ID)
		switch {
		case errors.Is(err, pkg.ErrNotFound):
			old = models.VoteNone
		case err != nil:
			return fmt.Errorf("look up vote for post %s: %w", postID, err)
		default:
			old = vote.Value
		}
	}

	newValue := value
	if value == old {
		newValue = models.VoteNone // toggle: aynı oy → geri çek
	}
	delta := newValue - old

	// Optimistic apply — network sonucu beklenmez.
	s.commit(gen, func() {
		s.votes[postID] = newValue
		s.adjustTally(postID, delta)
	})

	if err := s.remote.PutVote(ctx, serverID, postID, s.user.ID, newValue); err != nil {
		// Rollback: optimistic delta geri alınır, local tutarlılık korunur.
		s.commit(gen, func() {
			s.votes[postID] = old
			s.adjustTally(postID, -delta)
		})
		return fmt.Errorf("vote on post %s: %w", postID, err)
	}

	return nil
}

// SendMessage, mesaj gönderir ve başarıda akışın sonuna ekler.
// Mesajlar append-only'dir — edit/delete yolu yoktur.
func (s *Session) SendMessage(ctx context.Context, content string) (models.Message, error) {
	serverID, gen, err := s.activeServer()
	if err != nil {
		return models.Message{}, err
	}

	req := models.CreateMessageRequest{AuthorID: s.user.ID, Content: content}
	if err := req.Validate(); err != nil {
		return models.Message{}, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	msg, err := s.remote.CreateMessage(ctx, serverID, req.AuthorID, req.Content)
	if err != nil {
		return models.Message{}, fmt.Errorf("send message: %w", err)
	}

	s.commit(gen, func() {
		s.messages = append(s.messages, msg)
	})
	s.resolver.Resolve(ctx, client.IDSet([]string{msg.AuthorID}))

	return msg, nil
}

// activeServer, mutation'ların ortak guard'ı: Ready durumda yüklü sunucunun
// id'sini ve o anki generation'ı döner. Sunucu yüklü değilse ErrNotReady.
func (s *Session) activeServer() (string, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return "", 0, ErrNotReady
	}
	return s.server.ID, s.gen, nil
}

// requireOwn, post'un aktif kullanıcıya ait olduğunu doğrular.
// Edit/delete sadece yazara açıktır — serviste kimlik doğrulama olmadığı
// için bu kural client tarafında uygulanır. Local listede olmayan bir
// post zaten düzenlenemez.
func (s *Session) requireOwn(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == postID {
			if s.posts[i].AuthorID != s.user.ID {
				return fmt.Errorf("%w: only the author can modify a post", pkg.ErrForbidden)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: post %s", pkg.ErrNotFound, postID)
}

// adjustTally, local post listesindeki tally'yi delta kadar oynatır.
// Çağıran s.mu'yu tutuyor olmalı (commit içinden çağrılır).
func (s *Session) adjustTally(postID string, delta int) {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Votes += delta
			return
		}
	}
}
