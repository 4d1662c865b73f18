package models

import "time"

const (
	JOIN_REQUEST_PENDING  = "pending"
	JOIN_REQUEST_APPROVED = "approved"
	JOIN_REQUEST_REJECTED = "rejected"
)

type TeamJoinRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"uniqueIndex:idx_join_team_user;index" json:"team_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_join_team_user;index" json:"user_id"`
	Message   string    `gorm:"type:varchar(500);default:null" json:"message"`
	Status    string    `gorm:"type:varchar(50);default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *TeamJoinRequest) IsPending() bool {
	return r.Status == JOIN_REQUEST_PENDING
}
