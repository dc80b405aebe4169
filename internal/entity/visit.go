package entity

import (
	"database/sql"
	"time"
)

type DeviceEnum string

const (
	DeviceDesktop DeviceEnum = "DESKTOP"
	DeviceMobile  DeviceEnum = "MOBILE"
	DeviceTablet  DeviceEnum = "TABLET"
)

func (de DeviceEnum) String() string {
	return string(de)
}

// Visitor represents the visitor table
type Visitor struct {
	ID         int        `db:"id"`
	SessionID  string     `db:"session_id"`
	Device     DeviceEnum `db:"device"`
	FirstVisit time.Time  `db:"first_visit"`
	LastVisit  time.Time  `db:"last_visit"`
}

// PageVisit represents the page_visit table joined with its visitor.
// Visits are immutable once written; a visit's timestamp always falls
// within [visitor.first_visit, visitor.last_visit].
type PageVisit struct {
	ID        int            `db:"id"`
	VisitorID int            `db:"visitor_id"`
	URL       string         `db:"url"`
	PageTitle string         `db:"page_title"`
	Referrer  sql.NullString `db:"referrer"`
	VisitedAt time.Time      `db:"visited_at"`
	Duration  int            `db:"duration"` // seconds
	Bounced   bool           `db:"bounced"`

	// joined from visitor
	Device    DeviceEnum `db:"device"`
	SessionID string     `db:"session_id"`
}
