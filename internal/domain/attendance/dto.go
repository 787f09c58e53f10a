package attendance

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeCode string `json:"employeeCode"`
	// CheckInTime uses "YYYY-MM-DD HH:mm:ss" in the business timezone.
	CheckInTime string `json:"checkInTime"`
	IsLate      *bool  `json:"isLate,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "employeeCode is required",
		})
	}
	if validator.IsEmpty(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkInTime",
			Message: "checkInTime is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.CheckInTime, nil); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "checkInTime",
			Message: "checkInTime must use YYYY-MM-DD HH:mm:ss",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeCode *string
	From         *string
	To           *string
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	CheckInTime  string `json:"checkInTime"`
	CheckInDate  string `json:"checkInDate"`
	IsLate       bool   `json:"isLate"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeCode: a.EmployeeCode,
		CheckInTime:  a.CheckInTime.Format(timeutil.DateTimeLayout),
		CheckInDate:  a.CheckInDate.Format(timeutil.DateLayout),
		IsLate:       a.IsLate,
	}
}
