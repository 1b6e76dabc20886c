// file: models/active_scenario.go
package models

import (
	"time"
)

// LockScope 管理员操作的作用域
type LockScope string

const (
	ScopeAll         LockScope = "ALL"
	ScopeTeam        LockScope = "TEAM"
	ScopeParticipant LockScope = "PARTICIPANT"
)

// ActiveScenario 一次正在运行的演练场次
// EndTime 为空表示仍在运行；参与者记录在独立的表中，按场次 ID 关联
type ActiveScenario struct {
	ID         uint32     `gorm:"primarykey" json:"id"`
	ScenarioID uint32     `gorm:"index;not null" json:"scenario_id"`
	Scenario   *Scenario  `gorm:"foreignKey:ScenarioID" json:"scenario,omitempty"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (ActiveScenario) TableName() string {
	return "cyberrange_active_scenario"
}
