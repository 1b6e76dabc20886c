// file: services/session_service.go
package services

import (
	"cyberrange/database"
	"cyberrange/dto"
	"cyberrange/models"
	"cyberrange/utils"
	"errors"

	"gorm.io/gorm"
)

// ListActiveScenarios 列出所有运行中的场次（end_time 为空），按开始时间倒序，
// 未设置开始时间的排在最后
func ListActiveScenarios() ([]dto.SessionSummary, *ServiceError) {
	var actives []models.ActiveScenario
	if err := database.DB.Preload("Scenario").
		Where("end_time IS NULL").
		Order("start_time IS NULL, start_time DESC").
		Find(&actives).Error; err != nil {
		return nil, internalError("查询演练场次失败: " + err.Error())
	}

	summaries := make([]dto.SessionSummary, 0, len(actives))
	for _, a := range actives {
		summaries = append(summaries, buildSessionSummary(a))
	}
	return summaries, nil
}

// GetSessionOverview 单个场次概览，附带计分配置
func GetSessionOverview(activeScenarioID uint32) (*dto.SessionOverview, *ServiceError) {
	var active models.ActiveScenario
	if err := database.DB.Preload("Scenario").First(&active, activeScenarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("演练场次不存在")
		}
		return nil, internalError("查询演练场次失败: " + err.Error())
	}

	scoring := dto.ScoringConfig{Type: "standard"}
	if active.Scenario != nil && active.Scenario.ScoringType != "" {
		scoring.Type = active.Scenario.ScoringType
	}

	return &dto.SessionOverview{
		SessionSummary: buildSessionSummary(active),
		ScoringConfig:  scoring,
	}, nil
}

// buildSessionSummary 场次概要：场景名、参与人数、在场的队伍分组和角色
func buildSessionSummary(active models.ActiveScenario) dto.SessionSummary {
	var participants []models.ActiveParticipant
	database.DB.Where("active_scenario_id = ?", active.ID).Find(&participants)

	teamGroups := make([]string, 0)
	userIDs := make([]uint32, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
		if p.TeamGroup != "" && !containsString(teamGroups, p.TeamGroup) {
			teamGroups = append(teamGroups, p.TeamGroup)
		}
	}

	// 角色取自用户记录，只投影需要的列
	roles := make([]string, 0)
	if len(userIDs) > 0 {
		var users []models.User
		database.DB.Select("id", "role").Where("id IN ?", userIDs).Find(&users)
		for _, u := range users {
			if !containsString(roles, string(u.Role)) {
				roles = append(roles, string(u.Role))
			}
		}
	}

	scenarioName := ""
	if active.Scenario != nil {
		scenarioName = active.Scenario.ScenarioName
	}

	return dto.SessionSummary{
		ID:               active.ID,
		ScenarioID:       active.ScenarioID,
		ScenarioName:     scenarioName,
		StartTime:        utils.EpochMsPtr(active.StartTime),
		EndTime:          utils.EpochMsPtr(active.EndTime),
		ParticipantCount: len(participants),
		TeamGroups:       teamGroups,
		Roles:            roles,
	}
}
