// file: models/milestone.go
package models

// ScenarioMilestone 里程碑配置，结构与 Flag 配置一致，独立成表便于各自扩展
type ScenarioMilestone struct {
	ID            uint32 `gorm:"primarykey" json:"id"`
	ScenarioID    uint32 `gorm:"index;not null" json:"scenario_id"`
	PhaseID       uint32 `gorm:"index;not null" json:"phase_id"`
	MilestoneName string `gorm:"size:100;not null" json:"milestone_name"`
	Description   string `gorm:"type:text" json:"description"`
	Points        int    `gorm:"not null;default:0" json:"points"`
	Team          string `gorm:"size:50" json:"team"`
}

func (ScenarioMilestone) TableName() string {
	return "cyberrange_scenario_milestone"
}
