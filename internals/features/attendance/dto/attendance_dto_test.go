package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchms_backend/internals/features/attendance/model"
	helper "churchms_backend/internals/helpers"
)

func TestAttendanceRequestAttendee(t *testing.T) {
	memberID := uuid.New()
	name := "Ama"
	empty := ""

	tests := []struct {
		name    string
		req     AttendanceRequest
		wantErr error
		visitor bool
	}{
		{
			name: "member only",
			req:  AttendanceRequest{MemberID: &memberID},
		},
		{
			name:    "visitor only",
			req:     AttendanceRequest{VisitorName: &name},
			visitor: true,
		},
		{
			name:    "both set",
			req:     AttendanceRequest{MemberID: &memberID, VisitorName: &name},
			wantErr: ErrBothAttendee,
		},
		{
			name:    "neither set",
			req:     AttendanceRequest{},
			wantErr: ErrNoAttendee,
		},
		{
			name:    "empty visitor name counts as absent",
			req:     AttendanceRequest{VisitorName: &empty},
			wantErr: ErrNoAttendee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attendee, err := tt.req.Attendee()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.visitor, attendee.IsVisitor())
			if tt.visitor {
				assert.Equal(t, name, attendee.VisitorName)
			} else {
				require.NotNil(t, attendee.MemberID)
				assert.Equal(t, memberID, *attendee.MemberID)
			}
		})
	}
}

func TestAttendanceRequestRequiresTakenBy(t *testing.T) {
	memberID := uuid.New()
	takenBy := "Pastor John"

	req := AttendanceRequest{
		MemberID:    &memberID,
		ServiceType: model.ServiceSunday,
	}
	err := helper.ValidateStruct(nil, &req)
	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "TakenBy")

	req.TakenBy = &takenBy
	assert.NoError(t, helper.ValidateStruct(nil, &req))
}
