package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	AttendanceModel "churchms_backend/internals/features/attendance/model"
	"churchms_backend/internals/features/members/dto"
	"churchms_backend/internals/features/members/model"
	TitheModel "churchms_backend/internals/features/tithes/model"
	helper "churchms_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// nextMemberNumber issues sequential numbers like M0001, M0002. Runs inside
// the caller's transaction so concurrent creates see a consistent max.
// Ordering by length first keeps M10000 above M9999 once numbers outgrow
// the four-digit pad.
func nextMemberNumber(tx *gorm.DB) (string, error) {
	var last string
	err := tx.Model(&model.MemberModel{}).
		Select("member_number").
		Order("length(member_number) DESC, member_number DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}
	return bumpMemberNumber(last), nil
}

// bumpMemberNumber increments the numeric suffix; the pad widens naturally
// past M9999.
func bumpMemberNumber(last string) string {
	seq := 0
	if last != "" {
		fmt.Sscanf(last, "M%d", &seq)
	}
	return fmt.Sprintf("M%04d", seq+1)
}

func (ctrl *MemberController) findMember(c *fiber.Ctx, preload bool) (*model.MemberModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid member id")
	}

	q := ctrl.DB.WithContext(c.Context())
	if preload {
		q = q.Preload("FamilyMembers")
	}

	var m model.MemberModel
	if err := q.First(&m, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Member not found")
		}
		log.Printf("[ERROR] find member: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch member")
	}
	return &m, nil
}

// emailTaken checks case-insensitively, excluding excludeID when non-nil.
func (ctrl *MemberController) emailTaken(c *fiber.Ctx, email string, excludeID *uuid.UUID) (bool, error) {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.MemberModel{}).
		Where("LOWER(member_email) = LOWER(?)", email)
	if excludeID != nil {
		q = q.Where("member_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := ctrl.emailTaken(c, *req.Email, nil)
		if err != nil {
			log.Printf("[ERROR] member email check: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "A member with this email already exists")
		}
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dateOfBirth")
	}
	baptism, err := parseOptionalDate(req.BaptismDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid baptismDate")
	}
	joinDate := time.Now().UTC()
	if req.JoinDate != nil && *req.JoinDate != "" {
		t, err := helper.ParseDate(*req.JoinDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid joinDate")
		}
		joinDate = t
	}

	m := model.MemberModel{
		MemberFirstName:        req.FirstName,
		MemberLastName:         req.LastName,
		MemberEmail:            req.Email,
		MemberPhone:            req.Phone,
		MemberDateOfBirth:      dob,
		MemberGender:           req.Gender,
		MemberMaritalStatus:    req.MaritalStatus,
		MemberStatus:           model.MembershipActive,
		MemberAddress:          req.Address,
		MemberCity:             req.City,
		MemberState:            req.State,
		MemberCountry:          req.Country,
		MemberPostalCode:       req.PostalCode,
		MemberJoinDate:         joinDate,
		MemberBaptized:         req.Baptized,
		MemberBaptismDate:      baptism,
		MemberOccupation:       req.Occupation,
		MemberEmergencyContact: req.EmergencyContact,
		MemberEmergencyPhone:   req.EmergencyPhone,
		MemberNotes:            req.Notes,
		MemberCreatedByID:      req.CreatedByID,
	}
	if req.MembershipStatus != nil {
		m.MemberStatus = *req.MembershipStatus
	}
	for _, fm := range req.FamilyMembers {
		m.FamilyMembers = append(m.FamilyMembers, model.FamilyMemberModel{
			FamilyMemberName:         fm.Name,
			FamilyMemberRelationship: fm.Relationship,
		})
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		num, err := nextMemberNumber(tx)
		if err != nil {
			return err
		}
		m.MemberNumber = num
		return tx.Create(&m).Error
	})
	if err != nil {
		log.Printf("[ERROR] create member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
	}

	return helper.JsonCreated(c, "Member created", dto.ToMemberResponse(&m))
}

func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.MemberModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("member_status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"member_first_name ILIKE ? OR member_last_name ILIKE ? OR member_number ILIKE ? OR member_email ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	var members []model.MemberModel
	if err := q.
		Preload("FamilyMembers").
		Order("member_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.PerPage).
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] list members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	return helper.JsonList(c, "Members fetched",
		dto.ToMemberResponseList(members),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetMemberCount reports the current total plus the total as of thirty days
// ago so the dashboard can show growth.
func (ctrl *MemberController) GetMemberCount(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var current int64
	if err := db.Model(&model.MemberModel{}).Count(&current).Error; err != nil {
		log.Printf("[ERROR] member count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	var previous int64
	if err := db.Model(&model.MemberModel{}).
		Where("member_created_at < ?", cutoff).
		Count(&previous).Error; err != nil {
		log.Printf("[ERROR] member count (previous): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	return helper.JsonOK(c, "Member count fetched", fiber.Map{
		"count":         current,
		"previousCount": previous,
	})
}

// GetMember returns the full profile: family members plus the member's
// recent giving and attendance history.
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	m, err := ctrl.findMember(c, true)
	if err != nil {
		return err
	}
	resp := dto.ToMemberResponse(m)

	db := ctrl.DB.WithContext(c.Context())

	var tithes []TitheModel.TitheModel
	if err := db.
		Where("tithe_member_id = ?", m.MemberID).
		Order("tithe_payment_date DESC").
		Limit(20).
		Find(&tithes).Error; err != nil {
		log.Printf("[ERROR] member tithes: %v", err)
	}
	for _, t := range tithes {
		resp.Tithes = append(resp.Tithes, dto.TitheSummary{
			TitheID:     t.TitheID,
			Amount:      t.TitheAmount,
			PaymentDate: t.TithePaymentDate,
			PaymentType: t.TithePaymentType,
		})
	}

	var attendance []AttendanceModel.AttendanceModel
	if err := db.
		Where("attendance_member_id = ?", m.MemberID).
		Order("attendance_date DESC").
		Limit(20).
		Find(&attendance).Error; err != nil {
		log.Printf("[ERROR] member attendance: %v", err)
	}
	for _, a := range attendance {
		resp.Attendance = append(resp.Attendance, dto.AttendanceSummary{
			AttendanceID: a.AttendanceID,
			ServiceType:  a.AttendanceServiceType,
			Date:         a.AttendanceDate,
		})
	}

	return helper.JsonOK(c, "Member fetched", resp)
}

func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	m, err := ctrl.findMember(c, false)
	if err != nil {
		return err
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := ctrl.emailTaken(c, *req.Email, &m.MemberID)
		if err != nil {
			log.Printf("[ERROR] member email check: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "A member with this email already exists")
		}
	}

	updates := map[string]interface{}{}
	setStr := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setStr("member_first_name", req.FirstName)
	setStr("member_last_name", req.LastName)
	setStr("member_email", req.Email)
	setStr("member_phone", req.Phone)
	setStr("member_gender", req.Gender)
	setStr("member_marital_status", req.MaritalStatus)
	setStr("member_status", req.MembershipStatus)
	setStr("member_address", req.Address)
	setStr("member_city", req.City)
	setStr("member_state", req.State)
	setStr("member_country", req.Country)
	setStr("member_postal_code", req.PostalCode)
	setStr("member_occupation", req.Occupation)
	setStr("member_emergency_contact", req.EmergencyContact)
	setStr("member_emergency_phone", req.EmergencyPhone)
	setStr("member_notes", req.Notes)
	if req.Baptized != nil {
		updates["member_baptized"] = *req.Baptized
	}
	for col, raw := range map[string]*string{
		"member_date_of_birth": req.DateOfBirth,
		"member_join_date":     req.JoinDate,
		"member_baptism_date":  req.BaptismDate,
	} {
		if raw == nil {
			continue
		}
		t, err := helper.ParseDate(*raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date value")
		}
		updates[col] = t
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(m).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.FamilyMembers != nil {
			if err := tx.Where("family_member_member_id = ?", m.MemberID).
				Delete(&model.FamilyMemberModel{}).Error; err != nil {
				return err
			}
			for _, fm := range *req.FamilyMembers {
				row := model.FamilyMemberModel{
					FamilyMemberMemberID:     m.MemberID,
					FamilyMemberName:         fm.Name,
					FamilyMemberRelationship: fm.Relationship,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] update member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}

	var fresh model.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("FamilyMembers").
		First(&fresh, "member_id = ?", m.MemberID).Error; err != nil {
		log.Printf("[ERROR] reload member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return helper.JsonUpdated(c, "Member updated", dto.ToMemberResponse(&fresh))
}

func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	m, err := ctrl.findMember(c, false)
	if err != nil {
		return err
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("family_member_member_id = ?", m.MemberID).
			Delete(&model.FamilyMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}

	return helper.JsonDeleted(c, "Member deleted", fiber.Map{"member_id": m.MemberID})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := helper.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
