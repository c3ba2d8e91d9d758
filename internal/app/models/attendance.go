package models

import (
	"time"
)

// AttendanceStatus enumerates the recordable attendance outcomes.
// Check-in only ever records Present; Absent and Late exist in the
// schema for records written through other channels.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

// AttendanceRecord defines a check-in event based on the
// 'attendance_records' table. Username and FullName are joined from the
// owning user on list queries.
type AttendanceRecord struct {
	ID           int64            `json:"id" db:"id"`
	UserID       int64            `json:"userId" db:"user_id"`
	Date         time.Time        `json:"date" db:"date"`
	Status       AttendanceStatus `json:"status" db:"status"`
	CheckInTime  time.Time        `json:"checkInTime" db:"check_in_time"`
	CheckOutTime *time.Time       `json:"checkOutTime,omitempty" db:"check_out_time"`
	Remarks      *string          `json:"remarks,omitempty" db:"remarks"`
	Username     string           `json:"username,omitempty"`
	FullName     string           `json:"fullName,omitempty"`
}
