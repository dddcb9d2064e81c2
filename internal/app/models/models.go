package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
)

// Capacity is a faculty profile's self-reported availability tier
// for taking on new mentees.
type Capacity string

const (
	CapacityAvailable Capacity = "available"
	CapacityLimited   Capacity = "limited"
	CapacityFull      Capacity = "full"
)

// RequestStatus defines the lifecycle state of a project request
type RequestStatus string

const (
	StatusPending          RequestStatus = "pending"
	StatusApproved         RequestStatus = "approved"
	StatusRejected         RequestStatus = "rejected"
	StatusChangesRequested RequestStatus = "changes_requested"
)

// MentorStatuses are the statuses a mentor may set when responding
// to a request. Pending is creation-only and never re-enterable.
var MentorStatuses = []RequestStatus{StatusApproved, StatusRejected, StatusChangesRequested}

// NotificationType classifies inbox notifications
type NotificationType string

const (
	NotificationRequestApproved NotificationType = "request_approved"
	NotificationRequestRejected NotificationType = "request_rejected"
	NotificationRequestChanges  NotificationType = "request_changes"
	NotificationGeneral         NotificationType = "general"
)

// Durations accepted on a project request.
const (
	DurationShort    = "1-2 months"
	DurationMedium   = "3-4 months"
	DurationSemester = "6 months"
	DurationYear     = "1 year"
)
