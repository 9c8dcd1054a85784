package handlers

import (
	"context"
	"io/fs"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/akinalp/dischord/client"
	"github.com/akinalp/dischord/database"
	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"
	"github.com/akinalp/dischord/repository"
	"github.com/akinalp/dischord/services"
	"github.com/akinalp/dischord/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer, gerçek stack'i (SQLite + repo + service + mux) geçici
// bir veritabanı üzerinde ayağa kaldırır ve HTTP client'ını döner.
// main.go'daki wire-up'ın test kopyasıdır.
func newTestServer(t *testing.T) *client.Client {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	friendRepo := repository.NewSQLiteFriendshipRepo(db.Conn)
	serverRepo := repository.NewSQLiteServerRepo(db.Conn)
	postRepo := repository.NewSQLitePostRepo(db.Conn)
	voteRepo := repository.NewSQLiteVoteRepo(db.Conn)
	messageRepo := repository.NewSQLiteMessageRepo(db.Conn)

	mux := NewMux(
		services.NewUserService(userRepo, friendRepo),
		services.NewServerService(db.Conn, serverRepo, userRepo),
		services.NewPostService(postRepo, voteRepo, serverRepo, userRepo),
		services.NewMessageService(messageRepo, serverRepo, userRepo),
	)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return client.New(srv.URL, srv.Client())
}

func TestUserAndFriendFlow(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	alice, err := api.CreateUser(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, alice.ID)
	assert.Equal(t, "alice", alice.Username)

	// Username unique'tir.
	_, err = api.CreateUser(ctx, "alice", "other@example.com")
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)

	// Validation service katmanında: kısa username reddedilir.
	_, err = api.CreateUser(ctx, "ab", "ab@example.com")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	bob, err := api.CreateUser(ctx, "bob", "bob@example.com")
	require.NoError(t, err)

	got, err := api.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = api.GetUser(ctx, "no-such-user")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Arkadaşlık simetriktir — tek ekleme iki yönden görünür.
	require.NoError(t, api.AddFriend(ctx, alice.ID, bob.ID))

	friends, err := api.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)

	friends, err = api.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "alice", friends[0].Username)

	// Tekrar eklemek idempotent'tir.
	require.NoError(t, api.AddFriend(ctx, alice.ID, bob.ID))
	friends, err = api.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, friends, 1)

	// Kendini eklemek reddedilir.
	err = api.AddFriend(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestServerPostAndVoteFlow(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	alice, err := api.CreateUser(ctx, "alice", "alice@example.com")
	require.NoError(t, err)

	server, err := api.CreateServer(ctx, "gophers", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, server.MemberIDs)
	assert.Empty(t, server.PostIDs)

	_, err = api.GetServer(ctx, "no-such-server")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	post, err := api.CreatePost(ctx, server.ID, alice.ID, "hello world", "first!")
	require.NoError(t, err)
	assert.Equal(t, 0, post.Votes)
	assert.False(t, post.Edited())

	// Sunucu okuması yeni post id'sini içerir.
	server, err = api.GetServer(ctx, server.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{post.ID}, server.PostIDs)

	// Edit: updated_at ilerler.
	edited, err := api.UpdatePost(ctx, server.ID, post.ID, "hello world v2", "edited body")
	require.NoError(t, err)
	assert.Equal(t, "hello world v2", edited.Title)
	assert.True(t, edited.Edited())

	// Oy yokken GetVote not-found'dur.
	_, err = api.GetVote(ctx, server.ID, post.ID, alice.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Upvote → tally post okumasında SUM'dan gelir.
	require.NoError(t, api.PutVote(ctx, server.ID, post.ID, alice.ID, models.VoteUp))

	vote, err := api.GetVote(ctx, server.ID, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoteUp, vote.Value)

	got, err := api.GetPost(ctx, server.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Votes)

	// Oy değiştirme: upsert, satır çoğalmaz.
	require.NoError(t, api.PutVote(ctx, server.ID, post.ID, alice.ID, models.VoteDown))
	got, err = api.GetPost(ctx, server.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Votes)

	// 0 → oy satırı silinir, GetVote yine not-found.
	require.NoError(t, api.PutVote(ctx, server.ID, post.ID, alice.ID, models.VoteNone))
	_, err = api.GetVote(ctx, server.ID, post.ID, alice.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	got, err = api.GetPost(ctx, server.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Votes)

	// Geçersiz oy değeri reddedilir.
	err = api.PutVote(ctx, server.ID, post.ID, alice.ID, 5)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	// Silinen post'a erişim not-found'dur (oylar cascade silinir).
	require.NoError(t, api.DeletePost(ctx, server.ID, post.ID))
	_, err = api.GetPost(ctx, server.ID, post.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestMessageFlow(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	alice, err := api.CreateUser(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	server, err := api.CreateServer(ctx, "chat", alice.ID)
	require.NoError(t, err)

	msgs, err := api.GetMessages(ctx, server.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	_, err = api.CreateMessage(ctx, server.ID, alice.ID, "first")
	require.NoError(t, err)
	_, err = api.CreateMessage(ctx, server.ID, alice.ID, "second")
	require.NoError(t, err)

	// Kronolojik sıra korunur.
	msgs, err = api.GetMessages(ctx, server.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)

	// Boş içerik reddedilir.
	_, err = api.CreateMessage(ctx, server.ID, alice.ID, "")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

// TestSessionOverRealStack, session state machine'ini gerçek HTTP + SQLite
// stack'ine karşı uçtan uca sürer: alice sunucu kurup içerik üretir,
// bob aynı sunucuya katılıp alice'in içeriğini çözümlenmiş isimlerle görür.
func TestSessionOverRealStack(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	alice, err := api.CreateUser(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	bob, err := api.CreateUser(ctx, "bob", "bob@example.com")
	require.NoError(t, err)

	// Alice: sunucu kur, post at, oy ver, mesaj gönder.
	aliceSess := session.New(api, alice, nil)

	server, err := aliceSess.CreateServer(ctx, "gophers")
	require.NoError(t, err)
	require.Equal(t, session.StateReady, aliceSess.State())

	post, err := aliceSess.CreatePost(ctx, "welcome", "intro thread")
	require.NoError(t, err)

	require.NoError(t, aliceSess.CastVote(ctx, post.ID, models.VoteUp))
	assert.Equal(t, 1, aliceSess.Posts()[0].Votes)

	_, err = aliceSess.SendMessage(ctx, "hi everyone")
	require.NoError(t, err)

	// Bob: id ile katıl, görünümü yükle.
	bobSess := session.New(api, bob, nil)
	require.NoError(t, bobSess.JoinServer(ctx, server.ID))
	require.Equal(t, session.StateReady, bobSess.State())

	posts := bobSess.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "welcome", posts[0].Title)
	assert.Equal(t, 1, posts[0].Votes) // alice'in oyu server tally'sinde

	msgs := bobSess.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi everyone", msgs[0].Content)

	// Yazar isimleri batch resolution'dan geldi.
	assert.Equal(t, "alice", bobSess.DisplayName(alice.ID))

	// Bob kendi oyunu verir — toggle aritmetiği kendi görünümünde.
	require.NoError(t, bobSess.CastVote(ctx, post.ID, models.VoteUp))
	assert.Equal(t, 2, bobSess.Posts()[0].Votes)

	got, err := api.GetPost(ctx, server.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Votes)
}
