// file: dto/leaderboard.go
package dto

// ========== 排行榜响应 DTO ==========

// BreakdownRow 单个题目的逐项得分明细
type BreakdownRow struct {
	Type          string `json:"type"` // FLAG / MILESTONE
	PhaseID       uint32 `json:"phase_id"`
	ItemID        uint32 `json:"item_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Points        int    `json:"points"`
	Role          string `json:"role"`
	Score         int    `json:"score"`
	Status        bool   `json:"status"`
	LockedByAdmin bool   `json:"locked_by_admin"`
	SubmittedAt   *int64 `json:"submitted_at"` // 毫秒时间戳
}

// PlayerRow 排行榜中的一名参与者
type PlayerRow struct {
	UserID            uint32         `json:"user_id"`
	ParticipantID     string         `json:"participant_id"`
	Name              string         `json:"name"`
	Role              string         `json:"role"`
	TeamGroup         string         `json:"team_group"`
	Score             int            `json:"score"`
	ItemsCompleted    int            `json:"items_completed"`
	TotalItems        int            `json:"total_items"`
	Completion        float64        `json:"completion"`
	AvgResponseTimeMs *float64       `json:"avg_response_time_ms"`
	LastSubmit        *int64         `json:"last_submit"`
	Breakdown         []BreakdownRow `json:"breakdown"`
}

// PhaseInfo 阶段信息
type PhaseInfo struct {
	ID        uint32 `json:"id"`
	PhaseName string `json:"phase_name"`
}

// PhaseConfigItem 阶段配置汇总中的一个题目条目
// Locked 为 true 表示没有任何参与者当前可见该题目
type PhaseConfigItem struct {
	Type        string   `json:"type"` // FLAG / MILESTONE
	ID          uint32   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Points      int      `json:"points"`
	Role        string   `json:"role"`
	Locked      bool     `json:"locked"`
	AssignedTo  []string `json:"assigned_to"`
}

// AdjustmentInfo 手动调分记录（时间统一为毫秒时间戳）
type AdjustmentInfo struct {
	ParticipantID string `json:"participant_data_id"`
	Type          string `json:"type"` // BONUS / PENALTY
	Delta         int    `json:"delta"`
	Note          string `json:"note,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// LeaderboardConfig 阶段级的锁定 / 分配汇总
type LeaderboardConfig struct {
	ByPhase    map[uint32][]*PhaseConfigItem `json:"by_phase"`
	TeamGroups []string                      `json:"team_groups"`
}

// LeaderboardResp 超管排行榜完整响应
type LeaderboardResp struct {
	Players          []PlayerRow       `json:"players"`
	Phases           []PhaseInfo       `json:"phases"`
	TeamsPresent     []string          `json:"teams_present"`
	RolesPresent     []string          `json:"roles_present"`
	ScoreAdjustments []AdjustmentInfo  `json:"score_adjustments"`
	Config           LeaderboardConfig `json:"config"`
}
