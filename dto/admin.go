// file: dto/admin.go
package dto

// ========== 超管请求 DTO ==========

// ToggleLockReq 锁定 / 解锁请求
// Locked 用指针以便区分 false 和未传
type ToggleLockReq struct {
	Locked        *bool  `json:"locked" binding:"required"`
	Scope         string `json:"scope" binding:"required"`
	TeamGroup     string `json:"team_group"`
	ParticipantID string `json:"participant_id"`
}

// AdjustScoreReq 手动调分请求
// Delta 的正负由调用方决定，服务端不按 reason 强制符号
type AdjustScoreReq struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Delta         *int   `json:"delta" binding:"required"`
	Reason        string `json:"reason" binding:"required,oneof=BONUS PENALTY"`
	Note          string `json:"note"`
}

// ToggleLockResp 锁定操作结果
type ToggleLockResp struct {
	UpdatedCount int   `json:"updated_count"`
	Timestamp    int64 `json:"timestamp"`
}
