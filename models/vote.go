package models

import "fmt"

// İzin verilen oy değerleri.
// 0 "oy yok" demektir ve veritabanında satır YOKLUĞU ile temsil edilir —
// 0 değerli bir satır saklanmaz, GetVote bu durumda not-found döner.
const (
	VoteDown = -1
	VoteNone = 0
	VoteUp   = 1
)

// Vote, bir (post, kullanıcı) çifti için verilmiş oyu temsil eder.
type Vote struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Value  int    `json:"value"`
}

// PutVoteRequest, oy kaydetme/değiştirme/geri çekme isteği.
// Value 0 gönderilirse mevcut oy silinir (geri çekme).
type PutVoteRequest struct {
	UserID string `json:"user_id"`
	Value  int    `json:"value"`
}

// Validate, PutVoteRequest'in geçerli olup olmadığını kontrol eder.
func (r *PutVoteRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Value < VoteDown || r.Value > VoteUp {
		return fmt.Errorf("vote value must be -1, 0 or 1")
	}
	return nil
}
