package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	attendanceerrors "kamila-hrm/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Punches after the grace cutoff are flagged late rather than rejected;
// attendance is a record, not a gate.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 15

	defaultDeviceID = "web"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Punch(ctx context.Context, companyID string, employeeID string, req PunchRequest) (AttendanceResponse, error)
	RecordBiometricPunch(ctx context.Context, req BiometricPunchRequest) (bool, error)
	GetAll(ctx context.Context, companyID string) ([]AttendanceResponse, error)
}

type service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, clock: time.Now}
}

func (s *service) Punch(ctx context.Context, companyID string, employeeID string, req PunchRequest) (AttendanceResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case "in":
		return s.clockIn(ctx, cid, eid, req)
	case "out":
		return s.clockOut(ctx, companyID, employeeID, req)
	default:
		return AttendanceResponse{}, attendanceerrors.ErrInvalidPunchType
	}
}

func (s *service) clockIn(ctx context.Context, companyID, employeeID uuid.UUID, req PunchRequest) (AttendanceResponse, error) {
	open, err := s.repo.FindOpenByEmployee(ctx, companyID.String(), employeeID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if open != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	now := s.clock().UTC()
	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = defaultDeviceID
	}

	row := &Attendance{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		ClockIn:    now,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Status:     punctuality(now),
		Source:     SourceManual,
		DeviceID:   deviceID,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) clockOut(ctx context.Context, companyID, employeeID string, req PunchRequest) (AttendanceResponse, error) {
	row, err := s.repo.FindOpenByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoOpenPunch
		}
		return AttendanceResponse{}, err
	}

	now := s.clock().UTC()
	row.ClockOut = &now
	if req.Latitude != nil {
		row.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		row.Longitude = req.Longitude
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

// RecordBiometricPunch registers a facial-terminal event. Unknown employee
// codes are dropped, not errored: the terminal cannot act on a failure and
// re-sending the event would not change the outcome.
func (s *service) RecordBiometricPunch(ctx context.Context, req BiometricPunchRequest) (bool, error) {
	eventTime, err := time.Parse(time.RFC3339, req.EventTime)
	if err != nil {
		return false, attendanceerrors.ErrInvalidEventTime
	}

	ref, err := s.repo.FindEmployeeByCedula(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Warn("biometric punch for unknown cedula dropped",
				zap.String("device_id", req.DeviceID),
			)
			return false, nil
		}
		return false, err
	}

	eventTime = eventTime.UTC()
	row := &Attendance{
		ID:         uuid.New(),
		CompanyID:  ref.CompanyID,
		EmployeeID: ref.ID,
		ClockIn:    eventTime,
		Status:     punctuality(eventTime),
		Source:     SourceBiometric,
		DeviceID:   req.DeviceID,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, attendanceerrors.ErrInvalidCompanyID
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func punctuality(t time.Time) string {
	if t.Hour() > lateCutoffHour || (t.Hour() == lateCutoffHour && t.Minute() > lateCutoffMinute) {
		return StatusLate
	}
	return StatusOnTime
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		CompanyID:  a.CompanyID.String(),
		EmployeeID: a.EmployeeID.String(),
		ClockIn:    a.ClockIn.Format(time.RFC3339),
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		Status:     a.Status,
		Source:     a.Source,
		DeviceID:   a.DeviceID,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
