// file: models/flag.go
package models

// ScenarioFlag Flag 题目配置，按 scenario_id 归属，运行期间只读
// Team 表示该 Flag 归属的角色（如 RED / BLUE）
type ScenarioFlag struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	ScenarioID  uint32 `gorm:"index;not null" json:"scenario_id"`
	PhaseID     uint32 `gorm:"index;not null" json:"phase_id"`
	FlagName    string `gorm:"size:100;not null" json:"flag_name"`
	Description string `gorm:"type:text" json:"description"`
	Points      int    `gorm:"not null;default:0" json:"points"`
	Team        string `gorm:"size:50" json:"team"`
}

func (ScenarioFlag) TableName() string {
	return "cyberrange_scenario_flag"
}
