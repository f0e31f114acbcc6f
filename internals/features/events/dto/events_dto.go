package dto

import (
	"time"

	"churchms_backend/internals/features/events/model"
	"churchms_backend/internals/features/events/service"
)

// Multipart form fields arrive as strings; booleans and numbers are parsed
// by the controller.
type EventRequest struct {
	Title                string  `json:"title"                validate:"required,max=255"`
	Description          *string `json:"description"`
	Location             *string `json:"location"             validate:"omitempty,max=255"`
	StartTime            string  `json:"startTime"            validate:"required"`
	EndTime              string  `json:"endTime"              validate:"required"`
	EventType            *string `json:"eventType"            validate:"omitempty,max=50"`
	IsRecurring          bool    `json:"isRecurring"`
	RecurringPattern     *string `json:"recurringPattern"     validate:"omitempty,max=12"`
	MaxAttendees         *int    `json:"maxAttendees"         validate:"omitempty,gt=0"`
	RegistrationRequired bool    `json:"registrationRequired"`
	Status               *string `json:"status"               validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED COMPLETED"`
	GroupID              *string `json:"groupId"              validate:"omitempty,max=100"`
}

type EventUpdateRequest struct {
	Title                *string `json:"title"                validate:"omitempty,max=255"`
	Description          *string `json:"description"`
	Location             *string `json:"location"             validate:"omitempty,max=255"`
	StartTime            *string `json:"startTime"`
	EndTime              *string `json:"endTime"`
	EventType            *string `json:"eventType"            validate:"omitempty,max=50"`
	IsRecurring          *bool   `json:"isRecurring"`
	RecurringPattern     *string `json:"recurringPattern"     validate:"omitempty,max=12"`
	MaxAttendees         *int    `json:"maxAttendees"         validate:"omitempty,gt=0"`
	RegistrationRequired *bool   `json:"registrationRequired"`
	Status               *string `json:"status"               validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED COMPLETED"`
	GroupID              *string `json:"groupId"              validate:"omitempty,max=100"`
}

// EventResponse's ID is a string so synthetic occ: ids and real uuids share
// one shape.
type EventResponse struct {
	EventID              string     `json:"event_id"`
	Title                string     `json:"title"`
	Description          *string    `json:"description,omitempty"`
	Location             *string    `json:"location,omitempty"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              time.Time  `json:"end_time"`
	EventType            *string    `json:"event_type,omitempty"`
	IsRecurring          bool       `json:"is_recurring"`
	RecurringPattern     *string    `json:"recurring_pattern,omitempty"`
	MaxAttendees         *int       `json:"max_attendees,omitempty"`
	RegistrationRequired bool       `json:"registration_required"`
	Status               string     `json:"status"`
	IsActive             bool       `json:"is_active"`
	ImageURL             *string    `json:"image_url,omitempty"`
	ImageURLs            []string   `json:"image_urls,omitempty"`
	GroupID              *string    `json:"group_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func ToEventResponse(ev *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:              ev.EventID.String(),
		Title:                ev.EventTitle,
		Description:          ev.EventDescription,
		Location:             ev.EventLocation,
		StartTime:            ev.EventStartTime,
		EndTime:              ev.EventEndTime,
		EventType:            ev.EventType,
		IsRecurring:          ev.EventIsRecurring,
		RecurringPattern:     ev.EventRecurringPattern,
		MaxAttendees:         ev.EventMaxAttendees,
		RegistrationRequired: ev.EventRegistrationRequired,
		Status:               ev.EventStatus,
		IsActive:             ev.EventIsActive,
		ImageURL:             ev.EventImageURL,
		ImageURLs:            ev.EventImageURLs,
		GroupID:              ev.EventGroupID,
		CreatedAt:            ev.EventCreatedAt,
		UpdatedAt:            ev.EventUpdatedAt,
	}
}

// ToOccurrenceResponse renders an expanded occurrence: the master's fields
// with the occurrence's id and shifted times.
func ToOccurrenceResponse(occ *service.Occurrence) *EventResponse {
	resp := ToEventResponse(occ.Source)
	resp.EventID = occ.ID
	resp.StartTime = occ.StartTime
	resp.EndTime = occ.EndTime
	return resp
}

func ToOccurrenceResponseList(occs []service.Occurrence) []EventResponse {
	out := make([]EventResponse, 0, len(occs))
	for i := range occs {
		out = append(out, *ToOccurrenceResponse(&occs[i]))
	}
	return out
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToEventResponse(&models[i]))
	}
	return out
}
