// file: models/score_adjustment.go
package models

import (
	"time"
)

// AdjustmentReason 手动调分类型
type AdjustmentReason string

const (
	ReasonBonus   AdjustmentReason = "BONUS"
	ReasonPenalty AdjustmentReason = "PENALTY"
)

// ScoreAdjustment 手动调分审计记录，只追加、写入后不可变
// 同时带场次 ID 和参与者 ID，两条审计链（场次维度 / 参与者维度）都从这张表读取
type ScoreAdjustment struct {
	ID               uint64           `gorm:"primarykey" json:"id"`
	ActiveScenarioID uint32           `gorm:"index;not null" json:"active_scenario_id"`
	ParticipantID    string           `gorm:"size:36;index;not null" json:"participant_data_id"`
	Reason           AdjustmentReason `gorm:"type:enum('BONUS','PENALTY');not null" json:"type"`
	Delta            int              `gorm:"not null" json:"delta"`
	Note             string           `gorm:"size:255" json:"note,omitempty"`
	CreatedAt        time.Time        `json:"timestamp"`
}

func (ScoreAdjustment) TableName() string {
	return "cyberrange_score_adjustment"
}
