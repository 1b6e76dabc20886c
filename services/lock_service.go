// file: services/lock_service.go
package services

import (
	"cyberrange/database"
	"cyberrange/dto"
	"cyberrange/models"
	"cyberrange/utils"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LockTargetKind 锁定操作的目标类型
type LockTargetKind string

const (
	LockTargetFlag      LockTargetKind = "flag"
	LockTargetMilestone LockTargetKind = "milestone"
	LockTargetPhase     LockTargetKind = "phase"
)

// LockTarget 锁定目标：单个 Flag、单个里程碑，或整个阶段
type LockTarget struct {
	Kind LockTargetKind
	ID   uint32
}

// ToggleLock 在指定作用域内翻转题目可见性
// 两段式：先解析出目标参与者集合，再对每个参与者单独下发一条更新。
// 跨参与者不做事务包裹，部分失败时返回实际更新成功的数量；同值重复下发等价于无操作
func ToggleLock(activeScenarioID uint32, target LockTarget, locked bool, scope models.LockScope, teamGroup, participantRef string) (*dto.ToggleLockResp, *ServiceError) {
	var active models.ActiveScenario
	if err := database.DB.First(&active, activeScenarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("演练场次不存在")
		}
		return nil, internalError("查询演练场次失败: " + err.Error())
	}

	var participants []models.ActiveParticipant
	if err := database.DB.Where("active_scenario_id = ?", activeScenarioID).Find(&participants).Error; err != nil {
		return nil, internalError("查询参与者失败: " + err.Error())
	}

	ids, serr := ResolveScope(participants, scope, teamGroup, participantRef)
	if serr != nil {
		return nil, serr
	}

	now := time.Now()
	cols := lockColumns(locked, now)
	query, args := targetConditions(target)

	updated := 0
	for _, pid := range ids {
		res := database.DB.Model(&models.ParticipantItem{}).
			Where("participant_id = ?", pid).
			Where(query, args...).
			Updates(cols)
		if res.Error != nil {
			log.Warnf("Lock toggle failed for participant %s: %v", pid, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			updated++
		}
	}

	database.DB.Model(&active).Update("updated_at", now)

	PublishExerciseEvent("lock_toggled", activeScenarioID, map[string]interface{}{
		"target":        string(target.Kind),
		"item_id":       target.ID,
		"locked":        locked,
		"scope":         string(scope),
		"updated_count": updated,
	})

	return &dto.ToggleLockResp{UpdatedCount: updated, Timestamp: utils.EpochMs(now)}, nil
}

// lockColumns 可见性翻转只改状态字段，绝不触碰 obtained_score / submitted_at，
// 已拿到的分数在重新锁定后必须保留
func lockColumns(locked bool, now time.Time) map[string]interface{} {
	cols := map[string]interface{}{
		"status":          !locked,
		"locked_by_admin": locked,
		"updated_at":      now,
	}
	// 解锁时把可见时间锚定到本次写入，作为响应时间统计的起点；上锁时保留历史
	if !locked {
		cols["first_visible_at"] = now
	}
	return cols
}

// targetConditions 生成目标题目的匹配条件，阶段级操作同时覆盖该阶段下的 Flag 和里程碑
func targetConditions(target LockTarget) (string, []interface{}) {
	switch target.Kind {
	case LockTargetPhase:
		return "phase_id = ?", []interface{}{target.ID}
	case LockTargetMilestone:
		return "kind = ? AND item_id = ?", []interface{}{models.ItemKindMilestone, target.ID}
	default:
		return "kind = ? AND item_id = ?", []interface{}{models.ItemKindFlag, target.ID}
	}
}
