package attendance

import (
	"time"
)

type Attendance struct {
	ID           string
	EmployeeCode string
	CheckInTime  time.Time
	// CheckInDate is the calendar day of CheckInTime in the business timezone.
	CheckInDate time.Time
	IsLate      bool
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
