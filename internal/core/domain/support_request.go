package domain

import (
	"strings"
	"time"
)

// DeviceType is the kind of hardware a support request is about.
type DeviceType string

const (
	DeviceLaptop        DeviceType = "laptop"
	DeviceDesktop       DeviceType = "desktop"
	DevicePrinter       DeviceType = "printer"
	DeviceTablet        DeviceType = "tablet"
	DeviceSmartphone    DeviceType = "smartphone"
	DeviceServer        DeviceType = "server"
	DeviceMonitor       DeviceType = "monitor"
	DeviceRouter        DeviceType = "router"
	DeviceScanner       DeviceType = "scanner"
	DeviceExternalDrive DeviceType = "external drive"
	DeviceKeyboard      DeviceType = "keyboard"
	DeviceMouse         DeviceType = "mouse"
	DeviceProjector     DeviceType = "projector"
	DeviceNetworkSwitch DeviceType = "network switch"
	DeviceOther         DeviceType = "other"
)

var deviceTypes = []DeviceType{
	DeviceLaptop, DeviceDesktop, DevicePrinter, DeviceTablet, DeviceSmartphone,
	DeviceServer, DeviceMonitor, DeviceRouter, DeviceScanner, DeviceExternalDrive,
	DeviceKeyboard, DeviceMouse, DeviceProjector, DeviceNetworkSwitch, DeviceOther,
}

func (d DeviceType) Valid() bool {
	for _, v := range deviceTypes {
		if v == d {
			return true
		}
	}
	return false
}

// RequestStatus is the lifecycle state of a support request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in-progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SupportRequest is a customer's repair ticket.
type SupportRequest struct {
	ID                 string        `json:"id" bson:"id"`
	UserID             string        `json:"userId" bson:"userId"`
	DeviceType         DeviceType    `json:"deviceType" bson:"deviceType"`
	ProblemDescription string        `json:"problemDescription" bson:"problemDescription"`
	Quote              *float64      `json:"quote,omitempty" bson:"quote,omitempty"`
	ScheduledDate      *time.Time    `json:"scheduledDate,omitempty" bson:"scheduledDate,omitempty"`
	Status             RequestStatus `json:"status" bson:"status"`
	CreatedAt          time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (r *SupportRequest) Validate() error {
	if r.UserID == "" || r.DeviceType == "" || r.ProblemDescription == "" {
		return ErrMissingInput
	}
	if !r.DeviceType.Valid() {
		return NewValidationError("deviceType must be one of: " + joinDeviceTypes())
	}
	if !r.Status.Valid() {
		return NewValidationError("status must be one of: pending in-progress completed cancelled")
	}
	if r.Quote != nil && *r.Quote < 0 {
		return NewValidationError("quote must be at least 0")
	}
	return nil
}

// SupportRequestPatch is a partial update. Nil fields are left untouched.
type SupportRequestPatch struct {
	DeviceType         *DeviceType
	ProblemDescription *string
	Quote              *float64
	ScheduledDate      *time.Time
	Status             *RequestStatus
}

// TouchesAdminFields reports whether the patch changes fields only an admin may set.
func (p SupportRequestPatch) TouchesAdminFields() bool {
	return p.Status != nil || p.Quote != nil
}

func (p SupportRequestPatch) Validate() error {
	if p.DeviceType != nil && !p.DeviceType.Valid() {
		return NewValidationError("deviceType must be one of: " + joinDeviceTypes())
	}
	if p.Status != nil && !p.Status.Valid() {
		return NewValidationError("status must be one of: pending in-progress completed cancelled")
	}
	if p.ProblemDescription != nil && *p.ProblemDescription == "" {
		return ErrMissingInput
	}
	if p.Quote != nil && *p.Quote < 0 {
		return NewValidationError("quote must be at least 0")
	}
	return nil
}

func joinDeviceTypes() string {
	names := make([]string, len(deviceTypes))
	for i, d := range deviceTypes {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

// Fields lists the JSON names of the attributes the patch sets.
func (p SupportRequestPatch) Fields() []string {
	var f []string
	if p.DeviceType != nil {
		f = append(f, "deviceType")
	}
	if p.ProblemDescription != nil {
		f = append(f, "problemDescription")
	}
	if p.Quote != nil {
		f = append(f, "quote")
	}
	if p.ScheduledDate != nil {
		f = append(f, "scheduledDate")
	}
	if p.Status != nil {
		f = append(f, "status")
	}
	return f
}
