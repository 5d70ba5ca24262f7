package calendar

import (
	"context"
	"errors"
	"fmt"
	"main/internal/model"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrMalformedRequest is returned when a meeting request's date, time or
// duration cannot be parsed.
var ErrMalformedRequest = errors.New("malformed meeting request")

// scheduleLayout is the combined date+time format the frontend sends.
const scheduleLayout = "2006-01-02 15:04"

// Scheduler turns a meeting request plus stored credentials into a calendar
// event on the user's primary calendar.
type Scheduler interface {
	CreateMeeting(ctx context.Context, cred *model.Credential, req *model.MeetingRequest) (*model.MeetingResult, error)
}

// Client is the Google Calendar implementation of Scheduler.
type Client struct {
	opts []option.ClientOption
}

// NewClient creates a Client. Extra options are passed through to the
// calendar service, which lets tests point it at a fake endpoint.
func NewClient(opts ...option.ClientOption) *Client {
	return &Client{opts: opts}
}

// CreateMeeting inserts one event with an auto-provisioned Meet link and
// attendee notifications enabled. The stored access token is used as-is; an
// expired token surfaces as the provider's rejection, no refresh is attempted.
func (c *Client) CreateMeeting(ctx context.Context, cred *model.Credential, req *model.MeetingRequest) (*model.MeetingResult, error) {
	start, end, err := parseSchedule(req)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		Expiry:       cred.ExpiresAt,
		TokenType:    "Bearer",
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	opts := append([]option.ClientOption{option.WithHTTPClient(client)}, c.opts...)

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}

	event := &calendar.Event{
		Summary:     req.Subject,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: splitAttendees(req.AttendeeEmails),
		Reminders: &calendar.EventReminders{UseDefault: true},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				// Request ids only need to be unique per calendar; the
				// timestamp is good enough for one logical user.
				RequestId:             fmt.Sprintf("meeting-%d", time.Now().UnixNano()),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	created, err := svc.Events.Insert("primary", event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create event: %w", err)
	}

	// HangoutLink stays empty when Google failed to provision a conference;
	// the caller treats that as a meeting without a link, not an error.
	return &model.MeetingResult{
		EventID:     created.Id,
		MeetingLink: created.HangoutLink,
	}, nil
}

// parseSchedule combines the request's date and time fields into a UTC start
// timestamp and adds the duration to get the end.
func parseSchedule(req *model.MeetingRequest) (time.Time, time.Time, error) {
	start, err := time.Parse(scheduleLayout, req.Date+" "+req.Time)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad date/time %q %q", ErrMalformedRequest, req.Date, req.Time)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(req.Duration))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad duration %q", ErrMalformedRequest, req.Duration)
	}

	return start, start.Add(time.Duration(minutes) * time.Minute), nil
}

// splitAttendees turns "a@x.com, b@y.com" into attendee entries, trimming
// whitespace and preserving order. Addresses are not validated; Google
// rejects the whole insert if one is malformed.
func splitAttendees(emails string) []*calendar.EventAttendee {
	parts := strings.Split(emails, ",")
	attendees := make([]*calendar.EventAttendee, 0, len(parts))
	for _, p := range parts {
		attendees = append(attendees, &calendar.EventAttendee{Email: strings.TrimSpace(p)})
	}
	return attendees
}
