// file: controllers/auth_controller.go
package controllers

import (
	"cyberrange/database"
	"cyberrange/models"
	"cyberrange/utils"

	"github.com/gin-gonic/gin"
)

// Login 账号密码登录，签发 JWT
// 注册和用户管理由独立的用户服务负责，这里只保留登录入口
func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.Error(c, 4001, "用户名或密码错误")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 4001, "用户名或密码错误")
		return
	}
	if user.Status == models.StatusBanned {
		utils.Error(c, 4005, "账号已被封禁")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5000, "Failed to generate token")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"real_name": user.RealName,
			"role":      user.Role,
		},
	})
}
