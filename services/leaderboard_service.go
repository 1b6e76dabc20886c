// file: services/leaderboard_service.go
package services

import (
	"cyberrange/database"
	"cyberrange/dto"
	"cyberrange/mappers"
	"cyberrange/models"
	"cyberrange/utils"
	"errors"
	"fmt"
	"math"
	"sort"

	"gorm.io/gorm"
)

// GetLeaderboard 计算一个演练场次的完整超管排行榜
// 每次调用都重新聚合，不走缓存；读取的是调用时刻的快照，不对并发的
// 锁定 / 调分操作做隔离
func GetLeaderboard(activeScenarioID uint32) (*dto.LeaderboardResp, *ServiceError) {
	var active models.ActiveScenario
	if err := database.DB.First(&active, activeScenarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("演练场次不存在")
		}
		return nil, internalError("查询演练场次失败: " + err.Error())
	}

	var scenario models.Scenario
	if err := database.DB.First(&scenario, active.ScenarioID).Error; err != nil {
		return nil, internalError("场景配置缺失: " + err.Error())
	}

	var phases []models.ScenarioPhase
	database.DB.Where("scenario_id = ?", scenario.ID).Order("order_index asc, id asc").Find(&phases)

	var flags []models.ScenarioFlag
	database.DB.Where("scenario_id = ?", scenario.ID).Order("id asc").Find(&flags)

	var milestones []models.ScenarioMilestone
	database.DB.Where("scenario_id = ?", scenario.ID).Order("id asc").Find(&milestones)

	var participants []models.ActiveParticipant
	if err := database.DB.Where("active_scenario_id = ?", activeScenarioID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("id asc").
		Find(&participants).Error; err != nil {
		return nil, internalError("查询参与者失败: " + err.Error())
	}

	userIDs := make([]uint32, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}
	users := make(map[uint32]models.User, len(userIDs))
	if len(userIDs) > 0 {
		var rows []models.User
		database.DB.Select("id", "username", "real_name", "role").Where("id IN ?", userIDs).Find(&rows)
		for _, u := range rows {
			users[u.ID] = u
		}
	}

	var adjustments []models.ScoreAdjustment
	database.DB.Where("active_scenario_id = ?", activeScenarioID).Order("created_at asc, id asc").Find(&adjustments)

	return buildLeaderboard(phases, flags, milestones, participants, users, adjustments), nil
}

// buildLeaderboard 纯聚合，不做任何 I/O，便于单独测试
func buildLeaderboard(
	phases []models.ScenarioPhase,
	flags []models.ScenarioFlag,
	milestones []models.ScenarioMilestone,
	participants []models.ActiveParticipant,
	users map[uint32]models.User,
	adjustments []models.ScoreAdjustment,
) *dto.LeaderboardResp {
	phaseInfos := make([]dto.PhaseInfo, 0, len(phases))
	for _, ph := range phases {
		phaseInfos = append(phaseInfos, mappers.MapPhaseToInfo(ph))
	}

	flagMap := make(map[uint32]models.ScenarioFlag, len(flags))
	for _, f := range flags {
		flagMap[f.ID] = f
	}
	milestoneMap := make(map[uint32]models.ScenarioMilestone, len(milestones))
	for _, m := range milestones {
		milestoneMap[m.ID] = m
	}

	// 完成率的分母：有 Flag 配置就按 Flag 数，否则按里程碑数
	totalItems := len(flags)
	if totalItems == 0 {
		totalItems = len(milestones)
	}

	// 阶段配置汇总先按题目配置生成全锁定条目，再按参与者实际可见性翻转
	byPhase := make(map[uint32][]*dto.PhaseConfigItem)
	configIndex := make(map[string]*dto.PhaseConfigItem, len(flags)+len(milestones))
	for _, f := range flags {
		item := mappers.MapFlagToConfigItem(f)
		byPhase[f.PhaseID] = append(byPhase[f.PhaseID], item)
		configIndex[configKey(models.ItemKindFlag, f.ID)] = item
	}
	for _, m := range milestones {
		item := mappers.MapMilestoneToConfigItem(m)
		byPhase[m.PhaseID] = append(byPhase[m.PhaseID], item)
		configIndex[configKey(models.ItemKindMilestone, m.ID)] = item
	}

	players := make([]dto.PlayerRow, 0, len(participants))
	for _, p := range participants {
		user, hasUser := users[p.UserID]

		role := p.Team
		if role == "" && hasUser {
			role = string(user.Role)
		}
		if role == "" {
			role = "UNKNOWN"
		}
		teamGroup := p.TeamGroup
		if teamGroup == "" {
			teamGroup = "NO_GROUP"
		}

		breakdown := make([]dto.BreakdownRow, 0, len(p.Items))
		var responseTimes []int64
		var lastSubmit *int64
		itemsCompleted := 0

		// 展示顺序与原平台一致：先里程碑后 Flag
		for _, kind := range []models.ItemKind{models.ItemKindMilestone, models.ItemKindFlag} {
			for _, it := range p.Items {
				if it.Kind != kind {
					continue
				}

				// 汇总当前可见项到阶段配置；显式锁定或不可见的不参与
				if !it.LockedByAdmin && it.Status {
					if cfg := configIndex[configKey(it.Kind, it.ItemID)]; cfg != nil {
						cfg.Locked = false
						if !containsString(cfg.AssignedTo, teamGroup) {
							cfg.AssignedTo = append(cfg.AssignedTo, teamGroup)
						}
					}
				}

				row, ok := breakdownRow(it, flagMap, milestoneMap)
				if !ok {
					// 题目配置已不存在，跳过该条进度
					continue
				}

				submittedMs := utils.EpochMsPtr(it.SubmittedAt)
				visibleMs := utils.EpochMsPtr(it.FirstVisibleAt)
				if submittedMs != nil && visibleMs != nil {
					responseTimes = append(responseTimes, *submittedMs-*visibleMs)
				}
				if submittedMs != nil && (lastSubmit == nil || *submittedMs > *lastSubmit) {
					lastSubmit = submittedMs
				}
				if it.ObtainedScore > 0 {
					itemsCompleted++
				}
				breakdown = append(breakdown, row)
			}
		}

		completion := 0.0
		if totalItems > 0 {
			completion = math.Round(float64(itemsCompleted)/float64(totalItems)*100*100) / 100
		}

		var avgResponse *float64
		if len(responseTimes) > 0 {
			var sum int64
			for _, rt := range responseTimes {
				sum += rt
			}
			v := float64(sum) / float64(len(responseTimes))
			avgResponse = &v
		}

		name := ""
		if hasUser {
			name = user.DisplayName()
		}

		players = append(players, dto.PlayerRow{
			UserID:            p.UserID,
			ParticipantID:     p.ID,
			Name:              name,
			Role:              role,
			TeamGroup:         teamGroup,
			Score:             p.TotalObtainedScore,
			ItemsCompleted:    itemsCompleted,
			TotalItems:        totalItems,
			Completion:        completion,
			AvgResponseTimeMs: avgResponse,
			LastSubmit:        lastSubmit,
			Breakdown:         breakdown,
		})
	}

	sortPlayers(players)

	teams := make([]string, 0)
	roles := make([]string, 0)
	for _, pl := range players {
		if !containsString(teams, pl.TeamGroup) {
			teams = append(teams, pl.TeamGroup)
		}
		if !containsString(roles, pl.Role) {
			roles = append(roles, pl.Role)
		}
	}

	adjInfos := make([]dto.AdjustmentInfo, 0, len(adjustments))
	for _, adj := range adjustments {
		adjInfos = append(adjInfos, mappers.MapAdjustmentToInfo(adj))
	}

	return &dto.LeaderboardResp{
		Players:          players,
		Phases:           phaseInfos,
		TeamsPresent:     teams,
		RolesPresent:     roles,
		ScoreAdjustments: adjInfos,
		Config: dto.LeaderboardConfig{
			ByPhase:    byPhase,
			TeamGroups: teams,
		},
	}
}

// sortPlayers 名次规则：总分降序；同分者最后提交时间早者在前；
// 没有提交记录的排在同分段末尾
func sortPlayers(players []dto.PlayerRow) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		li, lj := players[i].LastSubmit, players[j].LastSubmit
		if li == nil {
			return false
		}
		if lj == nil {
			return true
		}
		return *li < *lj
	})
}

// breakdownRow 把进度记录和题目配置拼成明细行；配置缺失时返回 false
func breakdownRow(it models.ParticipantItem, flagMap map[uint32]models.ScenarioFlag, milestoneMap map[uint32]models.ScenarioMilestone) (dto.BreakdownRow, bool) {
	row := dto.BreakdownRow{
		PhaseID:       it.PhaseID,
		ItemID:        it.ItemID,
		Score:         it.ObtainedScore,
		Status:        it.Status,
		LockedByAdmin: it.LockedByAdmin,
		SubmittedAt:   utils.EpochMsPtr(it.SubmittedAt),
	}

	switch it.Kind {
	case models.ItemKindFlag:
		f, ok := flagMap[it.ItemID]
		if !ok {
			return row, false
		}
		row.Type = "FLAG"
		row.Name = f.FlagName
		row.Description = f.Description
		row.Points = f.Points
		row.Role = f.Team
	case models.ItemKindMilestone:
		m, ok := milestoneMap[it.ItemID]
		if !ok {
			return row, false
		}
		row.Type = "MILESTONE"
		row.Name = m.MilestoneName
		row.Description = m.Description
		row.Points = m.Points
		row.Role = m.Team
	default:
		return row, false
	}
	return row, true
}

func configKey(kind models.ItemKind, id uint32) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
