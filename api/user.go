package api

import (
	"fmt"

	"click/database"
	"click/models"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// parseDeviceUUID 校验客户端上报的设备 UUID
func parseDeviceUUID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("无效的设备 UUID: %w", err)
	}
	return id.String(), nil
}

// getOrCreateUser 按设备 UUID 原子化获取或创建用户
// 使用 INSERT ... ON CONFLICT DO NOTHING，避免并发首次请求下先查后建的竞态
func getOrCreateUser(userID string) (*models.User, error) {
	user := models.User{UserID: userID, Grade: models.GradeGeneral}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	// 并发插入时 DoNothing 不回填已有行，统一读一次
	if err := database.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// findUserByDeviceUUID 查找已存在的用户，不存在时返回错误（调用方映射为 404）
func findUserByDeviceUUID(deviceUUID string) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, "user_id = ?", deviceUUID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
