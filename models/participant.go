// file: models/participant.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemKind 进度记录对应的题目类型
type ItemKind string

const (
	ItemKindFlag      ItemKind = "flag"
	ItemKindMilestone ItemKind = "milestone"
)

// ActiveParticipant 一名用户在一个演练场次内的状态
// ID 即 participant_data_id；TotalObtainedScore 是权威展示分，由增量写入维护
type ActiveParticipant struct {
	ID                 string            `gorm:"size:36;primarykey" json:"id"`
	ActiveScenarioID   uint32            `gorm:"index:idx_participant_session,unique;not null" json:"active_scenario_id"`
	UserID             uint32            `gorm:"index:idx_participant_session,unique;not null" json:"user_id"`
	TeamGroup          string            `gorm:"size:50;index" json:"team_group"`
	Team               string            `gorm:"size:50" json:"team"`
	TotalObtainedScore int               `gorm:"not null;default:0" json:"total_obtained_score"`
	BonusScore         int               `gorm:"not null;default:0" json:"bonus_score"`
	PenaltyScore       int               `gorm:"not null;default:0" json:"penalty_score"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Items              []ParticipantItem `gorm:"foreignKey:ParticipantID" json:"items,omitempty"`
}

func (ActiveParticipant) TableName() string {
	return "cyberrange_active_participant"
}

// BeforeCreate GORM Hook，参与者 ID 使用 UUID，避免与数字形式的用户 ID 混淆
func (p *ActiveParticipant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ParticipantItem 单个 Flag / 里程碑的参与者进度记录
// Status 表示当前对参与者可见（未锁定）；LockedByAdmin 单独记录管理员是否
// 显式锁定过，仅用于审计和界面展示，不参与计分
type ParticipantItem struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	ParticipantID  string     `gorm:"size:36;uniqueIndex:idx_participant_item;not null" json:"participant_id"`
	Kind           ItemKind   `gorm:"type:enum('flag','milestone');uniqueIndex:idx_participant_item;not null" json:"kind"`
	ItemID         uint32     `gorm:"uniqueIndex:idx_participant_item;not null" json:"item_id"`
	PhaseID        uint32     `gorm:"index;not null" json:"phase_id"`
	ObtainedScore  int        `gorm:"not null;default:0" json:"obtained_score"`
	Status         bool       `gorm:"not null;default:false" json:"status"`
	LockedByAdmin  bool       `gorm:"not null;default:false" json:"locked_by_admin"`
	FirstVisibleAt *time.Time `json:"first_visible_at"`
	SubmittedAt    *time.Time `json:"submitted_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (ParticipantItem) TableName() string {
	return "cyberrange_participant_item"
}
