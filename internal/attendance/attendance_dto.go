package attendance

type PunchRequest struct {
	Type      string   `json:"type" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	DeviceID  string   `json:"device_id"`
}

// BiometricPunchRequest is the payload posted by Hikvision facial terminals.
type BiometricPunchRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	EventTime    string `json:"event_time" binding:"required"`
	DeviceID     string `json:"device_id"`
}

type AttendanceResponse struct {
	ID         string   `json:"id"`
	CompanyID  string   `json:"company_id"`
	EmployeeID string   `json:"employee_id"`
	ClockIn    string   `json:"clock_in"`
	ClockOut   *string  `json:"clock_out,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Status     string   `json:"status"`
	Source     string   `json:"source"`
	DeviceID   string   `json:"device_id"`
}
