package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchms_backend/internals/features/attendance/dto"
	"churchms_backend/internals/features/attendance/model"
	"churchms_backend/internals/features/attendance/service"
	MemberModel "churchms_backend/internals/features/members/model"
	helper "churchms_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func (ctrl *AttendanceController) findAttendance(c *fiber.Ctx) (*model.AttendanceModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid attendance id")
	}

	var a model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Member").
		First(&a, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		log.Printf("[ERROR] find attendance: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance record")
	}
	return &a, nil
}

// MarkAttendance records one attendee for one service. The same member (or
// visitor name) cannot be marked twice for the same service type on the same
// calendar day.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	attendee, err := req.Attendee()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	if !attendee.IsVisitor() {
		var n int64
		if err := db.Model(&MemberModel.MemberModel{}).
			Where("member_id = ?", *attendee.MemberID).
			Count(&n).Error; err != nil {
			log.Printf("[ERROR] attendance member check: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
	}

	date := time.Now().UTC()
	if req.Date != nil && *req.Date != "" {
		t, err := helper.ParseDate(*req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
		}
		date = t
	}

	dayStart, dayEnd := helper.DayBounds(date)
	var sameDay []model.AttendanceModel
	if err := db.
		Where("attendance_service_type = ?", req.ServiceType).
		Where("attendance_date BETWEEN ? AND ?", dayStart, dayEnd).
		Find(&sameDay).Error; err != nil {
		log.Printf("[ERROR] attendance duplicate check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	if service.IsDuplicate(sameDay, attendee, req.ServiceType, date) {
		return helper.JsonError(c, fiber.StatusConflict, "Attendance already marked for this service on this day")
	}

	a := model.AttendanceModel{
		AttendanceMemberID:    attendee.MemberID,
		AttendanceIsVisitor:   attendee.IsVisitor(),
		AttendanceServiceType: req.ServiceType,
		AttendanceDate:        date,
		AttendanceNotes:       req.Notes,
		AttendanceTakenBy:     req.TakenBy,
	}
	if attendee.IsVisitor() {
		a.AttendanceVisitorName = &attendee.VisitorName
		a.AttendanceVisitorContact = req.VisitorContact
		a.AttendanceVisitorAddress = req.VisitorAddress
	}

	if err := db.Create(&a).Error; err != nil {
		log.Printf("[ERROR] create attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	if a.AttendanceMemberID != nil {
		if err := db.Preload("Member").
			First(&a, "attendance_id = ?", a.AttendanceID).Error; err != nil {
			log.Printf("[ERROR] reload attendance: %v", err)
		}
	}
	return helper.JsonCreated(c, "Attendance marked", dto.ToAttendanceResponse(&a))
}

func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{})
	if raw := c.Query("memberId"); raw != "" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid memberId")
		}
		q = q.Where("attendance_member_id = ?", memberID)
	}
	if st := c.Query("serviceType"); st != "" {
		q = q.Where("attendance_service_type = ?", st)
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startDate")
		}
		q = q.Where("attendance_date >= ?", t)
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endDate")
		}
		q = q.Where("attendance_date <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	var rows []model.AttendanceModel
	if err := q.
		Preload("Member").
		Order("attendance_date DESC").
		Offset(paging.Offset).
		Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonList(c, "Attendance fetched",
		dto.ToAttendanceResponseList(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetStats aggregates the window given by the required startDate and endDate
// query params.
func (ctrl *AttendanceController) GetStats(c *fiber.Ctx) error {
	rawStart, rawEnd := c.Query("startDate"), c.Query("endDate")
	if rawStart == "" || rawEnd == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "startDate and endDate are required")
	}
	start, err := helper.ParseDate(rawStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startDate")
	}
	end, err := helper.ParseDate(rawEnd)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endDate")
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Member").
		Where("attendance_date BETWEEN ? AND ?", start, end).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] attendance stats query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "Attendance stats computed", service.ComputeStats(rows))
}

func (ctrl *AttendanceController) GetAttendanceByID(c *fiber.Ctx) error {
	a, err := ctrl.findAttendance(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Attendance fetched", dto.ToAttendanceResponse(a))
}

func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	a, err := ctrl.findAttendance(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.ServiceType != nil {
		updates["attendance_service_type"] = *req.ServiceType
	}
	if req.Date != nil {
		t, err := helper.ParseDate(*req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
		}
		updates["attendance_date"] = t
	}
	if req.Notes != nil {
		updates["attendance_notes"] = *req.Notes
	}
	if req.TakenBy != nil {
		updates["attendance_taken_by"] = *req.TakenBy
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).Model(a).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update attendance: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
		}
	}

	var fresh model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Member").
		First(&fresh, "attendance_id = ?", a.AttendanceID).Error; err != nil {
		log.Printf("[ERROR] reload attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}
	return helper.JsonUpdated(c, "Attendance updated", dto.ToAttendanceResponse(&fresh))
}

func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	a, err := ctrl.findAttendance(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(a).Error; err != nil {
		log.Printf("[ERROR] delete attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"attendance_id": a.AttendanceID})
}
