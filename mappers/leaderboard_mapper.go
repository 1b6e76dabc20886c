// file: mappers/leaderboard_mapper.go
package mappers

import (
	"cyberrange/dto"
	"cyberrange/models"
	"cyberrange/utils"
)

func MapPhaseToInfo(ph models.ScenarioPhase) dto.PhaseInfo {
	return dto.PhaseInfo{
		ID:        ph.ID,
		PhaseName: ph.PhaseName,
	}
}

// MapFlagToConfigItem 以全锁定状态初始化，排行榜聚合时再按参与者可见性翻转
func MapFlagToConfigItem(f models.ScenarioFlag) *dto.PhaseConfigItem {
	return &dto.PhaseConfigItem{
		Type:        "FLAG",
		ID:          f.ID,
		Name:        f.FlagName,
		Description: f.Description,
		Points:      f.Points,
		Role:        f.Team,
		Locked:      true,
		AssignedTo:  []string{},
	}
}

func MapMilestoneToConfigItem(m models.ScenarioMilestone) *dto.PhaseConfigItem {
	return &dto.PhaseConfigItem{
		Type:        "MILESTONE",
		ID:          m.ID,
		Name:        m.MilestoneName,
		Description: m.Description,
		Points:      m.Points,
		Role:        m.Team,
		Locked:      true,
		AssignedTo:  []string{},
	}
}

func MapAdjustmentToInfo(adj models.ScoreAdjustment) dto.AdjustmentInfo {
	return dto.AdjustmentInfo{
		ParticipantID: adj.ParticipantID,
		Type:          string(adj.Reason),
		Delta:         adj.Delta,
		Note:          adj.Note,
		Timestamp:     utils.EpochMs(adj.CreatedAt),
	}
}
