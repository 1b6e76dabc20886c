// file: controllers/session_controller.go
package controllers

import (
	"cyberrange/services"
	"cyberrange/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListActiveScenarios 查询所有运行中的演练场次
func ListActiveScenarios(c *gin.Context) {
	summaries, serr := services.ListActiveScenarios()
	if serr != nil {
		respondServiceError(c, serr)
		return
	}
	utils.Success(c, "success", summaries)
}

// GetSessionOverview 查询单个场次概览
func GetSessionOverview(c *gin.Context) {
	activeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的场次ID")
		return
	}

	overview, serr := services.GetSessionOverview(uint32(activeID))
	if serr != nil {
		respondServiceError(c, serr)
		return
	}
	utils.Success(c, "success", overview)
}
