package session

import (
	"context"
	"testing"

	"github.com/akinalp/dischord/models"
	"github.com/akinalp/dischord/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationsRequireLoadedServer(t *testing.T) {
	remote := newFakeRemote()
	me := remote.addUser("me", "alice")
	sess := New(remote, me, nil)

	_, err := sess.CreatePost(context.Background(), "title", "body")
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = sess.SendMessage(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNotReady)

	err = sess.CastVote(context.Background(), "p1", models.VoteUp)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestCreatePostPrependsToFeed(t *testing.T) {
	sess, _ := newReadySession(t)

	first, err := sess.CreatePost(context.Background(), "first", "")
	require.NoError(t, err)
	second, err := sess.CreatePost(context.Background(), "second", "")
	require.NoError(t, err)

	// Feed newest-first: en yeni post başta.
	posts := sess.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestCreatePostValidation(t *testing.T) {
	sess, _ := newReadySession(t)

	_, err := sess.CreatePost(context.Background(), "", "body without title")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Empty(t, sess.Posts())
}

func TestEditPostPreservesOrder(t *testing.T) {
	sess, _ := newReadySession(t)

	a, err := sess.CreatePost(context.Background(), "post a", "")
	require.NoError(t, err)
	b, err := sess.CreatePost(context.Background(), "post b", "")
	require.NoError(t, err)

	edited, err := sess.EditPost(context.Background(), a.ID, "post a v2", "now with body")
	require.NoError(t, err)
	assert.Equal(t, "post a v2", edited.Title)
	assert.True(t, edited.Edited())

	// Düzenleme yeniden sıralamaz — a yerinde güncellenir.
	posts := sess.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, b.ID, posts[0].ID)
	assert.Equal(t, a.ID, posts[1].ID)
	assert.Equal(t, "post a v2", posts[1].Title)
}

func TestEditForeignPostForbidden(t *testing.T) {
	remote := newFakeRemote()
	me := remote.addUser("me", "alice")
	remote.addUser("u2", "bob")
	remote.addServer("s1", "gophers", "u2", []string{"me", "u2"})
	theirs := remote.addPost("s1", "u2", "bob's post")

	sess := New(remote, me, []string{"s1"})
	require.NoError(t, sess.Open(context.Background(), "s1"))

	// Edit/delete sadece yazara açıktır — remote'a çağrı bile gitmez.
	_, err := sess.EditPost(context.Background(), theirs.ID, "hijacked", "")
	assert.ErrorIs(t, err, pkg.ErrForbidden)

	err = sess.DeletePost(context.Background(), theirs.ID, true)
	assert.ErrorIs(t, err, pkg.ErrForbidden)
	assert.Len(t, sess.Posts(), 1)
}

func TestEditUnknownPostFails(t *testing.T) {
	sess, _ := newReadySession(t)

	_, err := sess.EditPost(context.Background(), "ghost", "title", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestDeletePostRequiresConfirmation(t *testing.T) {
	sess, remote := newReadySession(t)

	post, err := sess.CreatePost(context.Background(), "doomed", "")
	require.NoError(t, err)

	// confirmed=false: hiçbir çağrı yapılmaz, post yerinde kalır.
	err = sess.DeletePost(context.Background(), post.ID, false)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Len(t, sess.Posts(), 1)
	_, ok := remote.posts[post.ID]
	assert.True(t, ok)

	require.NoError(t, sess.DeletePost(context.Background(), post.ID, true))
	assert.Empty(t, sess.Posts())
	_, ok = remote.posts[post.ID]
	assert.False(t, ok)
}

// ─── Oylama ───

func TestCastVoteAndToggle(t *testing.T) {
	sess, remote := newReadySession(t)

	post, err := sess.CreatePost(context.Background(), "vote on me", "")
	require.NoError(t, err)
	require.Equal(t, 0, sess.Posts()[0].Votes)

	// Upvote: 0 → +1.
	require.NoError(t, sess.CastVote(context.Background(), post.ID, models.VoteUp))
	assert.Equal(t, models.VoteUp, sess.Vote(post.ID))
	assert.Equal(t, 1, sess.Posts()[0].Votes)
	assert.Equal(t, models.VoteUp, remote.votes[voteKey(post.ID, "me")])

	// Aynı oyu tekrar vermek toggle'dır: +1 → 0, kayıt silinir.
	require.NoError(t, sess.CastVote(context.Background(), post.ID, models.VoteUp))
	assert.Equal(t, models.VoteNone, sess.Vote(post.ID))
	assert.Equal(t, 0, sess.Posts()[0].Votes)
	_, ok := remote.votes[voteKey(post.ID, "me")]
	assert.False(t, ok)
}

func TestCastVoteSwitchAppliesDoubleDelta(t *testing.T) {
	sess, _ := newReadySession(t)

	post, err := sess.CreatePost(context.Background(), "swing vote", "")
	require.NoError(t, err)

	require.NoError(t, sess.CastVote(context.Background(), post.ID, models.VoteUp))
	require.Equal(t, 1, sess.Posts()[0].Votes)

	// +1'den -1'e geçiş: delta = -1 - (+1) = -2.
	require.NoError(t, sess.CastVote(context.Background(), post.ID, models.VoteDown))
	assert.Equal(t, models.VoteDown, sess.Vote(post.ID))
	assert.Equal(t, -1, sess.Posts()[0].Votes)
}

func TestCastVoteLooksUpUnknownState(t *testing.T) {
	sess, remote := newReadySession(t)

	post, err := sess.CreatePost(context.Background(), "pre-voted", "")
	require.NoError(t, err)

	// Sunucuda önceden verilmiş oy var ama session bilmiyor
	// (ör: önceki oturumdan). İlk CastVote sunucudan öğrenip
	// toggle aritmetiğini ona göre yapar: +1 tekrar → geri çekme.
	remote.votes[voteKey(post.ID, "me")] = models.VoteUp

	require.NoError(t, sess.CastVote(context.Background(), post.ID, models.VoteUp))
	assert.Equal(t, models.VoteNone, sess.Vote(post.ID))
	assert.Equal(t, -1, sess.Posts()[0].Votes) // 0 tally'den -1 delta
}

func TestCastVoteRejectsInvalidValue(t *testing.T) {
	sess, _ := newReadySession(t)

	assert.ErrorIs(t, sess.CastVote(context.Background(), "p1", 0), pkg.ErrBadRequest)
	assert.ErrorIs(t, sess.CastVote(context.Background(), "p1", 2), pkg.ErrBadRequest)
}

func TestCastVoteRollsBackOnFailure(t *testing.T) {
	sess, remote := newReadySession(t)

	post, err := sess.CreatePost(context.Background(), "flaky network", "")
	require.NoError(t, err)

	remote.failPutVote = true

	err = sess.CastVote(context.Background(), post.ID, models.VoteUp)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnavailable)

	// Optimistic delta geri alındı — local state yazma öncesine döndü.
	assert.Equal(t, models.VoteNone, sess.Vote(post.ID))
	assert.Equal(t, 0, sess.Posts()[0].Votes)

	// Network düzelince aynı oy temiz durumdan verilebilir.
	remote.failPutVote = false
	require.NoError(t, sess.CastVote(context.Background(), post.ID, models.VoteUp))
	assert.Equal(t, 1, sess.Posts()[0].Votes)
}

// ─── Mesajlar ───

func TestSendMessageAppends(t *testing.T) {
	sess, _ := newReadySession(t)

	_, err := sess.SendMessage(context.Background(), "one")
	require.NoError(t, err)
	_, err = sess.SendMessage(context.Background(), "two")
	require.NoError(t, err)

	msgs := sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "two", msgs[1].Content)
}

func TestSendMessageValidation(t *testing.T) {
	sess, _ := newReadySession(t)

	_, err := sess.SendMessage(context.Background(), "")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Empty(t, sess.Messages())
}
