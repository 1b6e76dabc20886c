// file: services/lock_service_test.go
package services

import (
	"cyberrange/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLockColumnsNeverTouchScore(t *testing.T) {
	now := time.Now()
	for _, locked := range []bool{true, false} {
		cols := lockColumns(locked, now)
		require.NotContains(t, cols, "obtained_score")
		require.NotContains(t, cols, "submitted_at")
	}
}

func TestLockColumnsLock(t *testing.T) {
	now := time.Now()
	cols := lockColumns(true, now)
	require.Equal(t, false, cols["status"])
	require.Equal(t, true, cols["locked_by_admin"])
	require.Equal(t, now, cols["updated_at"])
	// 上锁不抹掉可见时间历史
	require.NotContains(t, cols, "first_visible_at")
}

func TestLockColumnsUnlockAnchorsVisibleTime(t *testing.T) {
	now := time.Now()
	cols := lockColumns(false, now)
	require.Equal(t, true, cols["status"])
	require.Equal(t, false, cols["locked_by_admin"])
	require.Equal(t, now, cols["first_visible_at"])
}

func TestTargetConditionsFlag(t *testing.T) {
	query, args := targetConditions(LockTarget{Kind: LockTargetFlag, ID: 7})
	require.Equal(t, "kind = ? AND item_id = ?", query)
	require.Equal(t, []interface{}{models.ItemKindFlag, uint32(7)}, args)
}

func TestTargetConditionsMilestone(t *testing.T) {
	query, args := targetConditions(LockTarget{Kind: LockTargetMilestone, ID: 9})
	require.Equal(t, "kind = ? AND item_id = ?", query)
	require.Equal(t, []interface{}{models.ItemKindMilestone, uint32(9)}, args)
}

func TestTargetConditionsPhaseCoversBothKinds(t *testing.T) {
	// 阶段级操作不按类型过滤，Flag 和里程碑一起翻转
	query, args := targetConditions(LockTarget{Kind: LockTargetPhase, ID: 3})
	require.Equal(t, "phase_id = ?", query)
	require.Equal(t, []interface{}{uint32(3)}, args)
}
