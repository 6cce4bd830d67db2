package params

import (
	"hedera-agent-go/internal/hedera"
)

// SignSchedule adds the caller's signature to a pending schedule.
type SignSchedule struct {
	ScheduleID string `json:"schedule_id" validate:"required"`
}

// SignScheduleNormalised is ready for a schedule-sign transaction.
type SignScheduleNormalised struct {
	ScheduleID hedera.ScheduleID `json:"scheduleId"`
}

// DeleteSchedule cancels a pending schedule before it executes.
type DeleteSchedule struct {
	ScheduleID string `json:"schedule_id" validate:"required"`
}

// DeleteScheduleNormalised is ready for a schedule-delete transaction.
type DeleteScheduleNormalised struct {
	ScheduleID hedera.ScheduleID `json:"scheduleId"`
}
