package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"main/internal/model"
)

func TestParseSchedule(t *testing.T) {
	testCases := []struct {
		name          string
		req           *model.MeetingRequest
		expectedStart time.Time
		expectedEnd   time.Time
		wantErr       bool
	}{
		{
			name:          "Valid schedule",
			req:           &model.MeetingRequest{Date: "2025-01-02", Time: "09:00", Duration: "30"},
			expectedStart: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			name:          "Duration with surrounding whitespace",
			req:           &model.MeetingRequest{Date: "2025-01-02", Time: "23:45", Duration: " 45 "},
			expectedStart: time.Date(2025, 1, 2, 23, 45, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 1, 3, 0, 30, 0, 0, time.UTC),
		},
		{
			name:    "Bad date",
			req:     &model.MeetingRequest{Date: "02/01/2025", Time: "09:00", Duration: "30"},
			wantErr: true,
		},
		{
			name:    "Bad time",
			req:     &model.MeetingRequest{Date: "2025-01-02", Time: "9am", Duration: "30"},
			wantErr: true,
		},
		{
			name:    "Bad duration",
			req:     &model.MeetingRequest{Date: "2025-01-02", Time: "09:00", Duration: "half an hour"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := parseSchedule(tc.req)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRequest)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedEnd, end)
		})
	}
}

func TestSplitAttendees(t *testing.T) {
	testCases := []struct {
		name     string
		emails   string
		expected []string
	}{
		{
			name:     "Whitespace trimmed and order preserved",
			emails:   "a@x.com, b@y.com",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "Single attendee",
			emails:   "a@x.com",
			expected: []string{"a@x.com"},
		},
		{
			name:     "Malformed addresses are passed through",
			emails:   " not-an-email ,b@y.com",
			expected: []string{"not-an-email", "b@y.com"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attendees := splitAttendees(tc.emails)

			assert.Len(t, attendees, len(tc.expected))
			for i, email := range tc.expected {
				assert.Equal(t, email, attendees[i].Email)
			}
		})
	}
}

func TestCreateMeeting(t *testing.T) {
	cred := &model.Credential{
		UserID:       model.DefaultUserID,
		AccessToken:  "abc",
		RefreshToken: "def",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	req := &model.MeetingRequest{
		AttendeeEmails: "a@x.com, b@y.com",
		Subject:        "Standup",
		Description:    "Daily sync",
		Duration:       "30",
		Date:           "2025-01-02",
		Time:           "09:00",
	}

	t.Run("Inserts one event on the primary calendar", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string]string
		var gotEvent calendar.Event

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = map[string]string{
				"conferenceDataVersion": r.URL.Query().Get("conferenceDataVersion"),
				"sendUpdates":           r.URL.Query().Get("sendUpdates"),
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(&calendar.Event{
				Id:          "evt123",
				HangoutLink: "https://meet.google.com/abc-defg-hij",
			})
		}))
		defer srv.Close()

		client := NewClient(option.WithEndpoint(srv.URL))

		result, err := client.CreateMeeting(context.Background(), cred, req)

		assert.NoError(t, err)
		assert.Equal(t, "evt123", result.EventID)
		assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetingLink)

		assert.True(t, strings.HasSuffix(gotPath, "/calendars/primary/events"))
		assert.Equal(t, "1", gotQuery["conferenceDataVersion"])
		assert.Equal(t, "all", gotQuery["sendUpdates"])

		assert.Equal(t, "Standup", gotEvent.Summary)
		assert.Equal(t, "Daily sync", gotEvent.Description)
		assert.Equal(t, "2025-01-02T09:00:00Z", gotEvent.Start.DateTime)
		assert.Equal(t, "2025-01-02T09:30:00Z", gotEvent.End.DateTime)
		assert.Equal(t, "UTC", gotEvent.Start.TimeZone)
		assert.Equal(t, "UTC", gotEvent.End.TimeZone)

		assert.Len(t, gotEvent.Attendees, 2)
		assert.Equal(t, "a@x.com", gotEvent.Attendees[0].Email)
		assert.Equal(t, "b@y.com", gotEvent.Attendees[1].Email)

		assert.True(t, gotEvent.Reminders.UseDefault)
		assert.Equal(t, "hangoutsMeet", gotEvent.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
		assert.True(t, strings.HasPrefix(gotEvent.ConferenceData.CreateRequest.RequestId, "meeting-"))
	})

	t.Run("Missing hangout link becomes an empty string", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(&calendar.Event{Id: "evt456"})
		}))
		defer srv.Close()

		client := NewClient(option.WithEndpoint(srv.URL))

		result, err := client.CreateMeeting(context.Background(), cred, req)

		assert.NoError(t, err)
		assert.Equal(t, "evt456", result.EventID)
		assert.Equal(t, "", result.MeetingLink)
	})

	t.Run("Provider rejection is surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":401,"message":"Invalid Credentials"}}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(option.WithEndpoint(srv.URL))

		_, err := client.CreateMeeting(context.Background(), cred, req)

		assert.Error(t, err)
	})

	t.Run("Malformed request never reaches the provider", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer srv.Close()

		client := NewClient(option.WithEndpoint(srv.URL))

		bad := &model.MeetingRequest{Date: "tomorrow", Time: "09:00", Duration: "30"}
		_, err := client.CreateMeeting(context.Background(), cred, bad)

		assert.ErrorIs(t, err, ErrMalformedRequest)
		assert.Equal(t, 0, hits)
	})
}
