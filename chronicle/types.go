package chronicle

import "time"

// DocumentVersion stamped into new documents
const DocumentVersion = "0.1"

// Defaults applied by create operations when the caller leaves a field empty
const (
	DefaultCircleColor    = "#D4AF37"
	DefaultMemberAvatar   = "👤"
	DefaultCompressedSize = "N/A"
)

// Circle is the top level group
type Circle struct {
	ID          string    `json:"id" msgpack:"id"`
	Name        string    `json:"name" msgpack:"name"`
	Icon        string    `json:"icon" msgpack:"icon"`
	Color       string    `json:"color" msgpack:"color"`
	CreatedAt   Timestamp `json:"createdAt" msgpack:"createdAt"`
	MemberCount int       `json:"memberCount" msgpack:"memberCount"` // denormalized, see Keeper.Reconcile
}

// Member is a person belonging to exactly one circle
type Member struct {
	ID        string    `json:"id" msgpack:"id"`
	CircleID  string    `json:"circleId" msgpack:"circleId"`
	Name      string    `json:"name" msgpack:"name"`
	Avatar    string    `json:"avatar" msgpack:"avatar"`
	IsAdmin   bool      `json:"isAdmin" msgpack:"isAdmin"`
	CreatedAt Timestamp `json:"createdAt" msgpack:"createdAt"`
}

// Event is a dated milestone of a member
type Event struct {
	ID        string    `json:"id" msgpack:"id"`
	CircleID  string    `json:"circleId" msgpack:"circleId"`
	MemberID  string    `json:"memberId" msgpack:"memberId"`
	Title     string    `json:"title" msgpack:"title"`
	Icon      string    `json:"icon" msgpack:"icon"`
	Date      string    `json:"date" msgpack:"date"`
	Year      int       `json:"year" msgpack:"year"`
	CreatedAt Timestamp `json:"createdAt" msgpack:"createdAt"`
}

// Memory is a media or text item attached to an event
type Memory struct {
	ID             string    `json:"id" msgpack:"id"`
	EventID        string    `json:"eventId" msgpack:"eventId"`
	Title          string    `json:"title" msgpack:"title"`
	Description    string    `json:"description" msgpack:"description"`
	Type           string    `json:"type" msgpack:"type"`
	MediaURL       string    `json:"mediaUrl" msgpack:"mediaUrl"`
	Thumbnail      string    `json:"thumbnail" msgpack:"thumbnail"`
	LinkedAudioURL *string   `json:"linkedAudioUrl" msgpack:"linkedAudioUrl"`
	CompressedSize string    `json:"compressedSize" msgpack:"compressedSize"`
	CreatedAt      Timestamp `json:"createdAt" msgpack:"createdAt"`
}

// Settings block of the document
type Settings struct {
	Version     string    `json:"version" msgpack:"version"`
	CreatedAt   Timestamp `json:"createdAt" msgpack:"createdAt"`
	LastUpdated Timestamp `json:"lastUpdated" msgpack:"lastUpdated"`
}

// Document is the single persisted blob holding every record
type Document struct {
	Circles  []*Circle `json:"circles" msgpack:"circles"`
	Events   []*Event  `json:"events" msgpack:"events"`
	Memories []*Memory `json:"memories" msgpack:"memories"`
	Members  []*Member `json:"members" msgpack:"members"`
	Settings *Settings `json:"settings" msgpack:"settings"`
}

// NewDocument returns an empty document stamped with now
func NewDocument(now time.Time) *Document {
	ts := NewTimestamp(now)
	return &Document{
		Circles:  make([]*Circle, 0),
		Events:   make([]*Event, 0),
		Memories: make([]*Memory, 0),
		Members:  make([]*Member, 0),
		Settings: &Settings{
			Version:     DocumentVersion,
			CreatedAt:   ts,
			LastUpdated: ts,
		},
	}
}

// Normalize replaces missing collections and settings so callers can append
// without nil checks. Documents written by older clients may omit them.
func (d *Document) Normalize(now time.Time) {
	if d.Circles == nil {
		d.Circles = make([]*Circle, 0)
	}
	if d.Events == nil {
		d.Events = make([]*Event, 0)
	}
	if d.Memories == nil {
		d.Memories = make([]*Memory, 0)
	}
	if d.Members == nil {
		d.Members = make([]*Member, 0)
	}
	if d.Settings == nil {
		ts := NewTimestamp(now)
		d.Settings = &Settings{Version: DocumentVersion, CreatedAt: ts, LastUpdated: ts}
	}
}

// FindCircle by id, nil if absent
func (d *Document) FindCircle(id string) *Circle {
	for _, c := range d.Circles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindMember by id, nil if absent
func (d *Document) FindMember(id string) *Member {
	for _, m := range d.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// FindEvent by id, nil if absent
func (d *Document) FindEvent(id string) *Event {
	for _, e := range d.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindMemory by id, nil if absent
func (d *Document) FindMemory(id string) *Memory {
	for _, m := range d.Memories {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// CircleInput fields supplied by the caller when creating a circle
type CircleInput struct {
	Name  string
	Icon  string
	Color string
}

// MemberInput fields supplied by the caller when creating a member
type MemberInput struct {
	Name    string
	Avatar  string
	IsAdmin bool
}

// EventInput fields supplied by the caller when creating an event
type EventInput struct {
	CircleID string
	MemberID string
	Title    string
	Icon     string
	Date     string
	Year     int
}

// MemoryInput fields supplied by the caller when creating a memory
type MemoryInput struct {
	EventID        string
	Title          string
	Description    string
	Type           string
	MediaURL       string
	Thumbnail      string
	LinkedAudioURL *string
	CompressedSize string
}
