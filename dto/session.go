// file: dto/session.go
package dto

// SessionSummary 演练场次概要
type SessionSummary struct {
	ID               uint32   `json:"id"`
	ScenarioID       uint32   `json:"scenario_id"`
	ScenarioName     string   `json:"scenario_name"`
	StartTime        *int64   `json:"start_time"`
	EndTime          *int64   `json:"end_time"`
	ParticipantCount int      `json:"participant_count"`
	TeamGroups       []string `json:"team_groups"`
	Roles            []string `json:"roles"`
}

// ScoringConfig 计分配置，场景未配置时默认 standard
type ScoringConfig struct {
	Type string `json:"type"`
}

// SessionOverview 单个场次概览
type SessionOverview struct {
	SessionSummary
	ScoringConfig ScoringConfig `json:"scoring_config"`
}
