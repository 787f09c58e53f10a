package absence

import "time"

type Absence struct {
	ID           string
	EmployeeCode string
	Date         time.Time
	IsJustified  bool
	Reason       string
	// IsPaid absences count as worked days for pay purposes.
	IsPaid    bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
