package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"churchms_backend/internals/features/events/dto"
	"churchms_backend/internals/features/events/model"
	"churchms_backend/internals/features/events/service"
	helper "churchms_backend/internals/helpers"
	"churchms_backend/internals/helpers/storage"
)

const (
	upcomingWindowDays = 30
	upcomingFetchLimit = 50
	upcomingTakeLimit  = 10
)

type EventController struct {
	DB      *gorm.DB
	Storage *storage.OSSService
}

func NewEventController(db *gorm.DB) *EventController {
	svc, err := storage.NewOSSServiceFromEnv()
	if err != nil {
		log.Printf("[WARN] event image storage disabled: %v", err)
	}
	return &EventController{DB: db, Storage: svc}
}

func (ctrl *EventController) findEvent(c *fiber.Ctx, id uuid.UUID) (*model.EventModel, error) {
	var ev model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ev, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch event")
	}
	return &ev, nil
}

// parseEventForm accepts either a JSON body or a multipart form with the
// same field names as strings.
func parseEventForm(c *fiber.Ctx, req *dto.EventRequest) error {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return c.BodyParser(req)
	}

	req.Title = c.FormValue("title")
	req.StartTime = c.FormValue("startTime")
	req.EndTime = c.FormValue("endTime")
	req.IsRecurring = c.FormValue("isRecurring") == "true"
	req.RegistrationRequired = c.FormValue("registrationRequired") == "true"

	optional := func(name string) *string {
		if v := c.FormValue(name); v != "" {
			return &v
		}
		return nil
	}
	req.Description = optional("description")
	req.Location = optional("location")
	req.EventType = optional("eventType")
	req.RecurringPattern = optional("recurringPattern")
	req.Status = optional("status")
	req.GroupID = optional("groupId")

	if v := c.FormValue("maxAttendees"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("maxAttendees must be a number")
		}
		req.MaxAttendees = &n
	}
	return nil
}

// parseEventUpdateForm mirrors parseEventForm for partial updates; absent
// form fields stay nil so they leave the stored value alone.
func parseEventUpdateForm(c *fiber.Ctx, req *dto.EventUpdateRequest) error {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return c.BodyParser(req)
	}

	optional := func(name string) *string {
		if v := c.FormValue(name); v != "" {
			return &v
		}
		return nil
	}
	req.Title = optional("title")
	req.Description = optional("description")
	req.Location = optional("location")
	req.StartTime = optional("startTime")
	req.EndTime = optional("endTime")
	req.EventType = optional("eventType")
	req.RecurringPattern = optional("recurringPattern")
	req.Status = optional("status")
	req.GroupID = optional("groupId")

	if v := c.FormValue("isRecurring"); v != "" {
		b := v == "true"
		req.IsRecurring = &b
	}
	if v := c.FormValue("registrationRequired"); v != "" {
		b := v == "true"
		req.RegistrationRequired = &b
	}
	if v := c.FormValue("maxAttendees"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("maxAttendees must be a number")
		}
		req.MaxAttendees = &n
	}
	return nil
}

// uploadFormImages pushes any multipart "images" files through storage and
// returns their public urls. Nil with no error means the request carried no
// files.
func (ctrl *EventController) uploadFormImages(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if ctrl.Storage == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Image storage is not configured")
	}
	urls, err := ctrl.Storage.UploadImages(c.Context(), files)
	if err != nil {
		if errors.Is(err, storage.ErrUploadTooLarge) {
			return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
		}
		log.Printf("[ERROR] upload event images: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to upload images")
	}
	return urls, nil
}

func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := parseEventForm(c, &req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	start, err := helper.ParseDate(req.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startTime")
	}
	end, err := helper.ParseDate(req.EndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endTime")
	}
	if !end.After(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "endTime must be after startTime")
	}
	if req.IsRecurring && req.RecurringPattern == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "recurringPattern is required for recurring events")
	}

	ev := model.EventModel{
		EventTitle:                req.Title,
		EventDescription:          req.Description,
		EventLocation:             req.Location,
		EventStartTime:            start,
		EventEndTime:              end,
		EventType:                 req.EventType,
		EventIsRecurring:          req.IsRecurring,
		EventRecurringPattern:     req.RecurringPattern,
		EventMaxAttendees:         req.MaxAttendees,
		EventRegistrationRequired: req.RegistrationRequired,
		EventStatus:               model.StatusPublished,
		EventIsActive:             true,
		EventGroupID:              req.GroupID,
	}
	if req.Status != nil {
		ev.EventStatus = *req.Status
	}

	urls, err := ctrl.uploadFormImages(c)
	if err != nil {
		return err
	}
	if len(urls) > 0 {
		ev.EventImageURLs = urls
		ev.EventImageURL = &urls[0]
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&ev).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventResponse(&ev))
}

func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.EventModel{}).
		Where("event_is_active = TRUE")
	if status := c.Query("status"); status != "" {
		q = q.Where("event_status = ?", status)
	} else {
		q = q.Where("event_status = ?", model.StatusPublished)
	}
	if et := c.Query("eventType"); et != "" {
		q = q.Where("event_type = ?", et)
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startDate")
		}
		q = q.Where("event_start_time >= ?", t)
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endDate")
		}
		q = q.Where("event_start_time <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var events []model.EventModel
	if err := q.
		Order("event_start_time ASC").
		Offset(paging.Offset).
		Limit(paging.PerPage).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.JsonList(c, "Events fetched",
		dto.ToEventResponseList(events),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetUpcomingEvents expands recurring events over the next thirty days and
// returns the first ten occurrences. Each event contributes at most one
// occurrence so a daily series cannot crowd the list.
func (ctrl *EventController) GetUpcomingEvents(c *fiber.Ctx) error {
	now := time.Now().UTC()
	windowEnd := now.AddDate(0, 0, upcomingWindowDays)

	var events []model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("event_is_active = TRUE AND event_status = ?", model.StatusPublished).
		Where("event_start_time >= ? OR event_is_recurring = TRUE", now).
		Order("event_start_time ASC").
		Limit(upcomingFetchLimit).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] upcoming events query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch upcoming events")
	}

	occs := service.Expand(events, now, windowEnd, 1)
	if len(occs) > upcomingTakeLimit {
		occs = occs[:upcomingTakeLimit]
	}

	return helper.JsonOK(c, "Upcoming events fetched", dto.ToOccurrenceResponseList(occs))
}

func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	raw := c.Params("id")

	if masterID, start, ok := service.ParseOccurrenceID(raw); ok {
		ev, err := ctrl.findEvent(c, masterID)
		if err != nil {
			return err
		}
		occ := service.ResolveOccurrence(ev, start)
		return helper.JsonOK(c, "Event fetched", dto.ToOccurrenceResponse(&occ))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, err := ctrl.findEvent(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Event fetched", dto.ToEventResponse(ev))
}

func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	raw := c.Params("id")
	if strings.HasPrefix(raw, service.OccurrenceIDPrefix) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Occurrences cannot be edited; update the recurring event itself")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, err := ctrl.findEvent(c, id)
	if err != nil {
		return err
	}

	var req dto.EventUpdateRequest
	if err := parseEventUpdateForm(c, &req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	start, end := ev.EventStartTime, ev.EventEndTime
	updates := map[string]interface{}{}
	if req.StartTime != nil {
		t, err := helper.ParseDate(*req.StartTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startTime")
		}
		start = t
		updates["event_start_time"] = t
	}
	if req.EndTime != nil {
		t, err := helper.ParseDate(*req.EndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endTime")
		}
		end = t
		updates["event_end_time"] = t
	}
	if !end.After(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "endTime must be after startTime")
	}

	if req.Title != nil {
		updates["event_title"] = *req.Title
	}
	if req.Description != nil {
		updates["event_description"] = *req.Description
	}
	if req.Location != nil {
		updates["event_location"] = *req.Location
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.IsRecurring != nil {
		updates["event_is_recurring"] = *req.IsRecurring
	}
	if req.RecurringPattern != nil {
		updates["event_recurring_pattern"] = *req.RecurringPattern
	}
	if req.MaxAttendees != nil {
		updates["event_max_attendees"] = *req.MaxAttendees
	}
	if req.RegistrationRequired != nil {
		updates["event_registration_required"] = *req.RegistrationRequired
	}
	if req.Status != nil {
		updates["event_status"] = *req.Status
	}
	if req.GroupID != nil {
		updates["event_group_id"] = *req.GroupID
	}

	urls, err := ctrl.uploadFormImages(c)
	if err != nil {
		return err
	}
	if len(urls) > 0 {
		updates["event_image_urls"] = pq.StringArray(urls)
		updates["event_image_url"] = urls[0]
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).Model(ev).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update event: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
		}
	}

	fresh, err := ctrl.findEvent(c, ev.EventID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventResponse(fresh))
}

// DeleteEvent deactivates the event. The row stays fetchable by id but
// drops out of every listing.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	raw := c.Params("id")
	if strings.HasPrefix(raw, service.OccurrenceIDPrefix) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Occurrences cannot be deleted; delete the recurring event itself")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, err := ctrl.findEvent(c, id)
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(ev).
		Update("event_is_active", false).Error; err != nil {
		log.Printf("[ERROR] delete event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": ev.EventID})
}
