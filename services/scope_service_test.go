// file: services/scope_service_test.go
package services

import (
	"cyberrange/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func scopeParticipants() []models.ActiveParticipant {
	return []models.ActiveParticipant{
		{ID: "a1b2c3d4-0000-0000-0000-000000000001", ActiveScenarioID: 1, UserID: 101, TeamGroup: "BLUE"},
		{ID: "a1b2c3d4-0000-0000-0000-000000000002", ActiveScenarioID: 1, UserID: 102, TeamGroup: "BLUE"},
		{ID: "a1b2c3d4-0000-0000-0000-000000000003", ActiveScenarioID: 1, UserID: 103, TeamGroup: "RED"},
		{ID: "a1b2c3d4-0000-0000-0000-000000000004", ActiveScenarioID: 1, UserID: 104, TeamGroup: ""},
	}
}

func TestResolveScopeAll(t *testing.T) {
	ids, serr := ResolveScope(scopeParticipants(), models.ScopeAll, "", "")
	require.Nil(t, serr)
	require.Len(t, ids, 4)
}

func TestResolveScopeTeam(t *testing.T) {
	ids, serr := ResolveScope(scopeParticipants(), models.ScopeTeam, "BLUE", "")
	require.Nil(t, serr)
	require.Equal(t, []string{
		"a1b2c3d4-0000-0000-0000-000000000001",
		"a1b2c3d4-0000-0000-0000-000000000002",
	}, ids)
}

func TestResolveScopeTeamMissingGroup(t *testing.T) {
	_, serr := ResolveScope(scopeParticipants(), models.ScopeTeam, "", "")
	require.NotNil(t, serr)
	require.Equal(t, ErrMissingParameter, serr.Kind)
	require.Equal(t, "team_group", serr.Field)
}

func TestResolveScopeParticipantDualForm(t *testing.T) {
	// 按用户 ID 和按参与者 ID 解析必须得到同一个单元素集合
	byUserID, serr := ResolveScope(scopeParticipants(), models.ScopeParticipant, "", "103")
	require.Nil(t, serr)
	byParticipantID, serr := ResolveScope(scopeParticipants(), models.ScopeParticipant, "", "a1b2c3d4-0000-0000-0000-000000000003")
	require.Nil(t, serr)
	require.Equal(t, byUserID, byParticipantID)
	require.Equal(t, []string{"a1b2c3d4-0000-0000-0000-000000000003"}, byUserID)
}

func TestResolveScopeParticipantMissing(t *testing.T) {
	_, serr := ResolveScope(scopeParticipants(), models.ScopeParticipant, "", "")
	require.NotNil(t, serr)
	require.Equal(t, ErrMissingParameter, serr.Kind)
}

func TestResolveScopeParticipantUnknown(t *testing.T) {
	_, serr := ResolveScope(scopeParticipants(), models.ScopeParticipant, "", "999")
	require.NotNil(t, serr)
	require.Equal(t, ErrInvalidParticipant, serr.Kind)
}

func TestResolveScopeInvalid(t *testing.T) {
	_, serr := ResolveScope(scopeParticipants(), models.LockScope("EVERYONE"), "", "")
	require.NotNil(t, serr)
	require.Equal(t, ErrInvalidScope, serr.Kind)
}

func TestResolveScopeTeamNoMatchIsEmptyNotError(t *testing.T) {
	ids, serr := ResolveScope(scopeParticipants(), models.ScopeTeam, "GREEN", "")
	require.Nil(t, serr)
	require.Empty(t, ids)
}
