package activity

import "time"

// Entry is one line of the append-only activity log.
type Entry struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Description string    `json:"description"`
	EntityID    string    `json:"entityId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type Type string

const (
	TypeEmployeeAdded      Type = "employee_added"
	TypeEmployeeUpdated    Type = "employee_updated"
	TypeEmployeeDeleted    Type = "employee_deleted"
	TypeAttendanceRecorded Type = "attendance_recorded"
	TypeAttendanceUpdated  Type = "attendance_updated"
	TypeAttendanceDeleted  Type = "attendance_deleted"
	TypePunishmentCreated  Type = "punishment_created"
	TypePunishmentUpdated  Type = "punishment_updated"
	TypePunishmentDeleted  Type = "punishment_deleted"
	TypePunishmentDone     Type = "punishment_completed"
	TypeDataImported       Type = "data_imported"
	TypeSettingsUpdated    Type = "settings_updated"
)
