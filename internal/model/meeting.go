package model

// MeetingRequest is the body of POST /meetings/create. Duration is minutes
// as a string and AttendeeEmails is a comma-separated list, mirroring what
// the frontend sends.
type MeetingRequest struct {
	AttendeeEmails string `json:"attendeeEmails"`
	Subject        string `json:"subject"`
	Description    string `json:"description"`
	Duration       string `json:"duration"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// MeetingResult carries back what Google assigned to the created event.
// MeetingLink is empty when conference provisioning silently failed.
type MeetingResult struct {
	EventID     string
	MeetingLink string
}
