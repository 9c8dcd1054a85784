package services

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/repository"

	"github.com/google/uuid"
)

// PostService, post ve oy iş mantığı için public interface.
//
// Sahiplik (post'u sadece yazarı düzenler/siler) client tarafında
// uygulanır — bu serviste kimlik doğrulama yoktur, kimlik bilgisi
// request'in beyanıdır. Yetkilendirme bu sistemin kapsamı dışındadır.
type PostService interface {
	// Create, yeni post oluşturur. updated_at = created_at ile başlar.
	Create(ctx context.Context, serverID string, req *models.CreatePostRequest) (*models.Post, error)

	// Get, post'u tally dahil döner.
	Get(ctx context.Context, serverID, postID string) (*models.Post, error)

	// Update, title/body değiştirir ve updated_at'i ilerletir —
	// updated_at != created_at client'ta "(edited)" işaretidir.
	Update(ctx context.Context, serverID, postID string, req *models.UpdatePostRequest) (*models.Post, error)

	// Delete, post'u kalıcı olarak siler. Geri alınamaz.
	Delete(ctx context.Context, serverID, postID string) error

	// GetVote, kullanıcının post'taki oyunu döner. Oy yoksa pkg.ErrNotFound —
	// yokluk 0 değeriyle değil, not-found ile temsil edilir.
	GetVote(ctx context.Context, serverID, postID, userID string) (*models.Vote, error)

	// PutVote, oyu kaydeder/değiştirir/geri çeker (value 0 → satır silinir).
	PutVote(ctx context.Context, serverID, postID string, req *models.PutVoteRequest) error
}

// postService, PostService'in private implementasyonu.
type postService struct {
	postRepo   repository.PostRepository
	voteRepo   repository.VoteRepository
	serverRepo repository.ServerRepository
	userRepo   repository.UserRepository
}

// NewPostService, constructor.
func NewPostService(
	postRepo repository.PostRepository,
	voteRepo repository.VoteRepository,
	serverRepo repository.ServerRepository,
	userRepo repository.UserRepository,
) PostService {
	return &postService{
		postRepo:   postRepo,
		voteRepo:   voteRepo,
		serverRepo: serverRepo,
		userRepo:   userRepo,
	}
}

func (s *postService) Create(ctx context.Context, serverID string, req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.serverRepo.GetByID(ctx, serverID); err != nil {
		return nil, err
	}
	exists, err := s.userRepo.Exists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %s", pkg.ErrNotFound, req.AuthorID)
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:        uuid.New().String(),
		ServerID:  serverID,
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Body:      req.Body,
		Votes:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) Get(ctx context.Context, serverID, postID string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, serverID, postID)
}

func (s *postService) Update(ctx context.Context, serverID, postID string, req *models.UpdatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, serverID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Body = req.Body
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, serverID, postID string) error {
	return s.postRepo.Delete(ctx, serverID, postID)
}

func (s *postService) GetVote(ctx context.Context, serverID, postID, userID string) (*models.Vote, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", pkg.ErrBadRequest)
	}

	// Post sunucusuna scope'lu doğrulanır — yanlış sunucu altında sorgu
	// post not-found'dur, oy not-found'u ile karışmaz.
	if _, err := s.postRepo.GetByID(ctx, serverID, postID); err != nil {
		return nil, err
	}

	return s.voteRepo.Get(ctx, postID, userID)
}

func (s *postService) PutVote(ctx context.Context, serverID, postID string, req *models.PutVoteRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.postRepo.GetByID(ctx, serverID, postID); err != nil {
		return err
	}

	// 0 → oy geri çekilir, satır silinir. Tally bir sonraki post
	// okumasında SUM'dan kendiliğinden doğru çıkar.
	if req.Value == models.VoteNone {
		return s.voteRepo.Delete(ctx, postID, req.UserID)
	}

	vote := &models.Vote{
		PostID: postID,
		UserID: req.UserID,
		Value:  req.Value,
	}
	return s.voteRepo.Upsert(ctx, vote)
}
