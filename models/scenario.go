// file: models/scenario.go
package models

import (
	"time"
)

// Scenario 场景静态定义，演练运行期间不可变
type Scenario struct {
	ID           uint32          `gorm:"primarykey" json:"id"`
	ScenarioName string          `gorm:"size:100;not null" json:"scenario_name"`
	Description  string          `gorm:"type:text" json:"description"`
	ScoringType  string          `gorm:"size:50" json:"scoring_type,omitempty"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at,omitempty"`
	Phases       []ScenarioPhase `gorm:"foreignKey:ScenarioID" json:"phases,omitempty"`
}

func (Scenario) TableName() string {
	return "cyberrange_scenario"
}

// ScenarioPhase 场景阶段，Flag 和里程碑按阶段分组
type ScenarioPhase struct {
	ID         uint32 `gorm:"primarykey" json:"id"`
	ScenarioID uint32 `gorm:"index;not null" json:"scenario_id"`
	PhaseName  string `gorm:"size:100;not null" json:"phase_name"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}

func (ScenarioPhase) TableName() string {
	return "cyberrange_scenario_phase"
}
