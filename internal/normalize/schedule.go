package normalize

import (
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/params"
)

// SignSchedule parses the target schedule id.
func SignSchedule(raw params.SignSchedule) (*params.SignScheduleNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	scheduleID, err := hedera.ParseScheduleID(raw.ScheduleID)
	if err != nil {
		return nil, err
	}
	return &params.SignScheduleNormalised{ScheduleID: scheduleID}, nil
}

// DeleteSchedule parses the target schedule id.
func DeleteSchedule(raw params.DeleteSchedule) (*params.DeleteScheduleNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	scheduleID, err := hedera.ParseScheduleID(raw.ScheduleID)
	if err != nil {
		return nil, err
	}
	return &params.DeleteScheduleNormalised{ScheduleID: scheduleID}, nil
}
