package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryEmail(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{
			name:    "first address wins",
			payload: `{"id":"user_1","email_addresses":[{"email_address":"a@example.com"},{"email_address":"b@example.com"}]}`,
			want:    "a@example.com",
		},
		{
			name:    "no addresses",
			payload: `{"id":"user_1","email_addresses":[]}`,
			wantErr: true,
		},
		{
			name:    "empty address",
			payload: `{"id":"user_1","email_addresses":[{"email_address":""}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data WebhookUserData
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &data))

			got, err := data.PrimaryEmail()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleEventUnknownTypeIsNoOp(t *testing.T) {
	evt := &WebhookEvent{Type: "session.created", Data: json.RawMessage(`{}`)}
	assert.NoError(t, HandleEvent(nil, evt))
}

func TestHandleEventRejectsMalformedData(t *testing.T) {
	for _, kind := range []EventKind{EventUserCreated, EventUserUpdated, EventUserDeleted} {
		t.Run(string(kind), func(t *testing.T) {
			evt := &WebhookEvent{Type: kind, Data: json.RawMessage(`not json`)}
			assert.Error(t, HandleEvent(nil, evt))
		})
	}
}
