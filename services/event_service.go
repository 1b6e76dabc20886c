// file: services/event_service.go
package services

import (
	"cyberrange/database"
	"cyberrange/utils"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const exerciseEventChannel = "cyberrange:exercise:events"

// PublishExerciseEvent 把管理端变更事件发到 Redis 频道，由外部的 websocket 推送服务消费
// 发布失败只记日志，不影响本次请求
func PublishExerciseEvent(event string, activeScenarioID uint32, payload map[string]interface{}) {
	if database.RDB == nil {
		return
	}

	body := map[string]interface{}{
		"id":                 uuid.NewString(),
		"event":              event,
		"active_scenario_id": activeScenarioID,
		"timestamp":          utils.EpochMs(time.Now()),
		"payload":            payload,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return
	}

	if err := database.RDB.Publish(database.Ctx, exerciseEventChannel, data).Err(); err != nil {
		log.Warnf("Failed to publish exercise event %s: %v", event, err)
	}
}
