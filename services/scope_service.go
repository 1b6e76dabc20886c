// file: services/scope_service.go
package services

import (
	"cyberrange/models"
	"strconv"
)

// ResolveScope 把管理员指定的作用域解析成具体的参与者 ID 集合
// 纯查找，无副作用；TEAM 必须带 team_group，PARTICIPANT 必须带 participant_id
func ResolveScope(participants []models.ActiveParticipant, scope models.LockScope, teamGroup, participantRef string) ([]string, *ServiceError) {
	switch scope {
	case models.ScopeAll:
		ids := make([]string, 0, len(participants))
		for _, p := range participants {
			ids = append(ids, p.ID)
		}
		return ids, nil

	case models.ScopeTeam:
		if teamGroup == "" {
			return nil, missingParameter("team_group")
		}
		ids := make([]string, 0)
		for _, p := range participants {
			if p.TeamGroup == teamGroup {
				ids = append(ids, p.ID)
			}
		}
		return ids, nil

	case models.ScopeParticipant:
		if participantRef == "" {
			return nil, missingParameter("participant_id")
		}
		id, serr := resolveParticipantRef(participants, participantRef)
		if serr != nil {
			return nil, serr
		}
		return []string{id}, nil

	default:
		return nil, invalidScope(string(scope))
	}
}

// resolveParticipantRef 兼容两种写法：数字形式的用户 ID，或参与者记录本身的 ID
// 先按用户 ID 匹配，再按参与者 ID 匹配
func resolveParticipantRef(participants []models.ActiveParticipant, ref string) (string, *ServiceError) {
	if uid, err := strconv.ParseUint(ref, 10, 32); err == nil {
		for _, p := range participants {
			if p.UserID == uint32(uid) {
				return p.ID, nil
			}
		}
	}
	for _, p := range participants {
		if p.ID == ref {
			return p.ID, nil
		}
	}
	return "", invalidParticipant(ref)
}
