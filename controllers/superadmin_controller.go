// file: controllers/superadmin_controller.go
package controllers

import (
	"cyberrange/dto"
	"cyberrange/mappers"
	"cyberrange/models"
	"cyberrange/services"
	"cyberrange/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetSessionLeaderboard 查询超管排行榜，每次实时重算
func GetSessionLeaderboard(c *gin.Context) {
	activeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的场次ID")
		return
	}

	board, serr := services.GetLeaderboard(uint32(activeID))
	if serr != nil {
		respondServiceError(c, serr)
		return
	}
	utils.Success(c, "success", board)
}

// ApplyScoreAdjustment 手动加分 / 扣分
func ApplyScoreAdjustment(c *gin.Context) {
	activeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的场次ID")
		return
	}

	var req dto.AdjustScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	adj, serr := services.ApplyAdjustment(uint32(activeID), req.ParticipantID, *req.Delta, models.AdjustmentReason(req.Reason), req.Note)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	utils.Success(c, "Score adjustment applied successfully", gin.H{
		"adjustment": mappers.MapAdjustmentToInfo(*adj),
	})
}

// ToggleFlagLock 锁定 / 解锁单个 Flag
func ToggleFlagLock(c *gin.Context) {
	toggleLock(c, services.LockTargetFlag)
}

// ToggleMilestoneLock 锁定 / 解锁单个里程碑
func ToggleMilestoneLock(c *gin.Context) {
	toggleLock(c, services.LockTargetMilestone)
}

// TogglePhaseLock 锁定 / 解锁整个阶段（该阶段下的 Flag 和里程碑一起翻转）
func TogglePhaseLock(c *gin.Context) {
	toggleLock(c, services.LockTargetPhase)
}

func toggleLock(c *gin.Context, kind services.LockTargetKind) {
	activeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的场次ID")
		return
	}
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的目标ID")
		return
	}

	var req dto.ToggleLockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	resp, serr := services.ToggleLock(
		uint32(activeID),
		services.LockTarget{Kind: kind, ID: uint32(itemID)},
		*req.Locked,
		models.LockScope(req.Scope),
		req.TeamGroup,
		req.ParticipantID,
	)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}
	utils.Success(c, "success", resp)
}

// respondServiceError 服务层错误分类到响应码的映射
func respondServiceError(c *gin.Context, serr *services.ServiceError) {
	switch serr.Kind {
	case services.ErrNotFound:
		utils.Error(c, 4004, serr.Error())
	case services.ErrInvalidScope:
		utils.Error(c, 2001, serr.Error())
	case services.ErrMissingParameter:
		utils.Error(c, 2002, serr.Error())
	case services.ErrInvalidParticipant:
		utils.Error(c, 2003, serr.Error())
	case services.ErrValidation:
		utils.Error(c, 1001, serr.Error())
	default:
		utils.Error(c, 5000, serr.Error())
	}
}
