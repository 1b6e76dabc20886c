// file: services/leaderboard_service_test.go
package services

import (
	"cyberrange/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func msTime(ms int64) *time.Time {
	t := time.UnixMilli(ms)
	return &t
}

func boardFlags() []models.ScenarioFlag {
	return []models.ScenarioFlag{
		{ID: 1, ScenarioID: 1, PhaseID: 10, FlagName: "F1", Points: 50, Team: "RED"},
		{ID: 2, ScenarioID: 1, PhaseID: 10, FlagName: "F2", Points: 30, Team: "RED"},
		{ID: 3, ScenarioID: 1, PhaseID: 20, FlagName: "F3", Points: 20, Team: "BLUE"},
	}
}

func boardPhases() []models.ScenarioPhase {
	return []models.ScenarioPhase{
		{ID: 10, ScenarioID: 1, PhaseName: "Recon", OrderIndex: 1},
		{ID: 20, ScenarioID: 1, PhaseName: "Exploit", OrderIndex: 2},
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	// 分数 [50, 80, 80]，最后提交 [t, t2, t1] 且 t1 < t2，期望顺序 80@t1, 80@t2, 50@t
	participants := []models.ActiveParticipant{
		{ID: "p-low", UserID: 1, TotalObtainedScore: 50, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50, SubmittedAt: msTime(5000)},
		}},
		{ID: "p-late", UserID: 2, TotalObtainedScore: 80, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50, SubmittedAt: msTime(9000)},
		}},
		{ID: "p-early", UserID: 3, TotalObtainedScore: 80, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50, SubmittedAt: msTime(7000)},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	require.Len(t, board.Players, 3)
	require.Equal(t, "p-early", board.Players[0].ParticipantID)
	require.Equal(t, "p-late", board.Players[1].ParticipantID)
	require.Equal(t, "p-low", board.Players[2].ParticipantID)
}

func TestLeaderboardNoSubmissionSortsLastInTier(t *testing.T) {
	participants := []models.ActiveParticipant{
		{ID: "p-silent", UserID: 1, TotalObtainedScore: 80},
		{ID: "p-submitted", UserID: 2, TotalObtainedScore: 80, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 80, SubmittedAt: msTime(7000)},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	require.Equal(t, "p-submitted", board.Players[0].ParticipantID)
	require.Equal(t, "p-silent", board.Players[1].ParticipantID)
	require.Nil(t, board.Players[1].LastSubmit)
}

func TestLeaderboardCompletion(t *testing.T) {
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50},
			{Kind: models.ItemKindFlag, ItemID: 2, PhaseID: 10, ObtainedScore: 0},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	p := board.Players[0]
	require.Equal(t, 1, p.ItemsCompleted)
	require.Equal(t, 3, p.TotalItems)
	require.InDelta(t, 33.33, p.Completion, 0.001)
	require.GreaterOrEqual(t, p.Completion, 0.0)
	require.LessOrEqual(t, p.Completion, 100.0)
}

func TestLeaderboardCompletionZeroItems(t *testing.T) {
	participants := []models.ActiveParticipant{{ID: "p1", UserID: 1}}
	board := buildLeaderboard(nil, nil, nil, participants, map[uint32]models.User{}, nil)
	require.Equal(t, 0, board.Players[0].TotalItems)
	require.Equal(t, 0.0, board.Players[0].Completion)
}

func TestLeaderboardDenominatorPrefersFlags(t *testing.T) {
	// 有 Flag 配置时分母只算 Flag，里程碑不计入
	milestones := []models.ScenarioMilestone{
		{ID: 1, ScenarioID: 1, PhaseID: 10, MilestoneName: "M1", Points: 10},
	}
	participants := []models.ActiveParticipant{{ID: "p1", UserID: 1}}

	board := buildLeaderboard(boardPhases(), boardFlags(), milestones, participants, map[uint32]models.User{}, nil)
	require.Equal(t, 3, board.Players[0].TotalItems)

	board = buildLeaderboard(boardPhases(), nil, milestones, participants, map[uint32]models.User{}, nil)
	require.Equal(t, 1, board.Players[0].TotalItems)
}

func TestLeaderboardAvgResponseTime(t *testing.T) {
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50, FirstVisibleAt: msTime(1000), SubmittedAt: msTime(4000)},
			{Kind: models.ItemKindFlag, ItemID: 2, PhaseID: 10, ObtainedScore: 30, FirstVisibleAt: msTime(2000), SubmittedAt: msTime(7000)},
			// 缺可见时间的不参与平均
			{Kind: models.ItemKindFlag, ItemID: 3, PhaseID: 20, ObtainedScore: 20, SubmittedAt: msTime(9000)},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	p := board.Players[0]
	require.NotNil(t, p.AvgResponseTimeMs)
	require.InDelta(t, 4000.0, *p.AvgResponseTimeMs, 0.001)
	require.NotNil(t, p.LastSubmit)
	require.Equal(t, int64(9000), *p.LastSubmit)
}

func TestLeaderboardAvgResponseTimeNilWithoutPairs(t *testing.T) {
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50},
		}},
	}
	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	require.Nil(t, board.Players[0].AvgResponseTimeMs)
}

func TestLeaderboardBreakdownKeepsScoreWhenLocked(t *testing.T) {
	// 已拿分的题目被重新锁定后，明细里分数和提交时间保持不变
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50, Status: false, LockedByAdmin: true, SubmittedAt: msTime(4000)},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	row := board.Players[0].Breakdown[0]
	require.Equal(t, 50, row.Score)
	require.True(t, row.LockedByAdmin)
	require.False(t, row.Status)
	require.NotNil(t, row.SubmittedAt)
	require.Equal(t, int64(4000), *row.SubmittedAt)
}

func TestLeaderboardRoleAndGroupFallbacks(t *testing.T) {
	users := map[uint32]models.User{
		2: {ID: 2, Username: "bob", Role: models.RoleUser},
	}
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Team: "RED", TeamGroup: "ALPHA"},
		{ID: "p2", UserID: 2},
		{ID: "p3", UserID: 3},
	}

	board := buildLeaderboard(nil, nil, nil, participants, users, nil)
	byID := map[string]int{}
	for i, pl := range board.Players {
		byID[pl.ParticipantID] = i
	}
	require.Equal(t, "RED", board.Players[byID["p1"]].Role)
	require.Equal(t, "ALPHA", board.Players[byID["p1"]].TeamGroup)
	require.Equal(t, "user", board.Players[byID["p2"]].Role)
	require.Equal(t, "bob", board.Players[byID["p2"]].Name)
	require.Equal(t, "UNKNOWN", board.Players[byID["p3"]].Role)
	require.Equal(t, "NO_GROUP", board.Players[byID["p3"]].TeamGroup)
}

func TestLeaderboardConfigByPhase(t *testing.T) {
	milestones := []models.ScenarioMilestone{
		{ID: 5, ScenarioID: 1, PhaseID: 20, MilestoneName: "M5", Points: 15, Team: "BLUE"},
	}
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, TeamGroup: "ALPHA", Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, Status: true, LockedByAdmin: false},
			{Kind: models.ItemKindFlag, ItemID: 2, PhaseID: 10, Status: false, LockedByAdmin: true},
		}},
		{ID: "p2", UserID: 2, TeamGroup: "ALPHA", Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, Status: true, LockedByAdmin: false},
		}},
		{ID: "p3", UserID: 3, TeamGroup: "BRAVO", Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, Status: true, LockedByAdmin: false},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), milestones, participants, map[uint32]models.User{}, nil)

	phase10 := board.Config.ByPhase[10]
	require.Len(t, phase10, 2)

	var f1, f2 int
	for i, item := range phase10 {
		if item.ID == 1 {
			f1 = i
		}
		if item.ID == 2 {
			f2 = i
		}
	}
	// F1 对三名参与者可见：解锁，分配集合去重后为两个分组
	require.False(t, phase10[f1].Locked)
	require.Equal(t, []string{"ALPHA", "BRAVO"}, phase10[f1].AssignedTo)
	// F2 被显式锁定：保持锁定且无分配
	require.True(t, phase10[f2].Locked)
	require.Empty(t, phase10[f2].AssignedTo)

	// 无人持有可见记录的题目保持锁定
	phase20 := board.Config.ByPhase[20]
	for _, item := range phase20 {
		require.True(t, item.Locked)
	}
}

func TestLeaderboardAdjustmentsAndPresence(t *testing.T) {
	adjustments := []models.ScoreAdjustment{
		{ID: 1, ActiveScenarioID: 1, ParticipantID: "p1", Reason: models.ReasonBonus, Delta: 10, Note: "good report", CreatedAt: time.UnixMilli(123456789)},
		{ID: 2, ActiveScenarioID: 1, ParticipantID: "p2", Reason: models.ReasonPenalty, Delta: -3, CreatedAt: time.UnixMilli(123456999)},
	}
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Team: "RED", TeamGroup: "ALPHA"},
		{ID: "p2", UserID: 2, Team: "BLUE", TeamGroup: "BRAVO"},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, adjustments)

	require.Len(t, board.ScoreAdjustments, 2)
	require.Equal(t, int64(123456789), board.ScoreAdjustments[0].Timestamp)
	require.Equal(t, "BONUS", board.ScoreAdjustments[0].Type)
	require.Equal(t, -3, board.ScoreAdjustments[1].Delta)

	require.ElementsMatch(t, []string{"ALPHA", "BRAVO"}, board.TeamsPresent)
	require.ElementsMatch(t, []string{"RED", "BLUE"}, board.RolesPresent)
	require.Equal(t, board.TeamsPresent, board.Config.TeamGroups)
}

func TestLeaderboardSkipsOrphanedItems(t *testing.T) {
	// 题目配置已被移除的进度记录不进明细，也不计入完成数
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 99, PhaseID: 10, ObtainedScore: 50, SubmittedAt: msTime(4000)},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), nil, participants, map[uint32]models.User{}, nil)
	require.Empty(t, board.Players[0].Breakdown)
	require.Equal(t, 0, board.Players[0].ItemsCompleted)
}

func TestLeaderboardMilestonesBeforeFlags(t *testing.T) {
	milestones := []models.ScenarioMilestone{
		{ID: 5, ScenarioID: 1, PhaseID: 10, MilestoneName: "M5", Points: 15},
	}
	participants := []models.ActiveParticipant{
		{ID: "p1", UserID: 1, Items: []models.ParticipantItem{
			{Kind: models.ItemKindFlag, ItemID: 1, PhaseID: 10, ObtainedScore: 50},
			{Kind: models.ItemKindMilestone, ItemID: 5, PhaseID: 10, ObtainedScore: 15},
		}},
	}

	board := buildLeaderboard(boardPhases(), boardFlags(), milestones, participants, map[uint32]models.User{}, nil)
	breakdown := board.Players[0].Breakdown
	require.Len(t, breakdown, 2)
	require.Equal(t, "MILESTONE", breakdown[0].Type)
	require.Equal(t, "FLAG", breakdown[1].Type)
}
