package constants

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

var AttendanceStatuses = []string{
	AttendancePresent,
	AttendanceAbsent,
	AttendanceLate,
}

func IsValidAttendanceStatus(status string) bool {
	for _, s := range AttendanceStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// Leave status values. New requests always start at pending.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)
