// file: services/adjustment_service.go
package services

import (
	"cyberrange/database"
	"cyberrange/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ApplyAdjustment 对单个参与者施加一次带审计的手动调分
// delta 的正负由调用方决定，不按 reason 强制符号；参与者内的更新在一个事务里完成，
// 分值列用表达式自增，并发调分不会互相覆盖
func ApplyAdjustment(activeScenarioID uint32, participantRef string, delta int, reason models.AdjustmentReason, note string) (*models.ScoreAdjustment, *ServiceError) {
	if reason != models.ReasonBonus && reason != models.ReasonPenalty {
		return nil, validation("reason", "reason 只能是 BONUS 或 PENALTY")
	}

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

	participantID, serr := resolveParticipantRef(participants, participantRef)
	if serr != nil {
		return nil, serr
	}

	now := time.Now()
	adj := models.ScoreAdjustment{
		ActiveScenarioID: activeScenarioID,
		ParticipantID:    participantID,
		Reason:           reason,
		Delta:            delta,
		Note:             note,
		CreatedAt:        now,
	}

	bonus, penalty := splitAdjustment(reason, delta)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"total_obtained_score": gorm.Expr("total_obtained_score + ?", delta),
			"bonus_score":          gorm.Expr("bonus_score + ?", bonus),
			"penalty_score":        gorm.Expr("penalty_score + ?", penalty),
			"updated_at":           now,
		}
		if err := tx.Model(&models.ActiveParticipant{}).Where("id = ?", participantID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Create(&adj).Error; err != nil {
			return err
		}
		return tx.Model(&models.ActiveScenario{}).Where("id = ?", activeScenarioID).Update("updated_at", now).Error
	})
	if err != nil {
		return nil, internalError("记录分数调整失败: " + err.Error())
	}

	PublishExerciseEvent("score_adjusted", activeScenarioID, map[string]interface{}{
		"participant_id": participantID,
		"reason":         string(reason),
		"delta":          delta,
	})

	return &adj, nil
}

// splitAdjustment 按 reason 把增量分派到 bonus / penalty 累计列
func splitAdjustment(reason models.AdjustmentReason, delta int) (bonus int, penalty int) {
	if reason == models.ReasonBonus {
		return delta, 0
	}
	return 0, delta
}
