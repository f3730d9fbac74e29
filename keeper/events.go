package keeper

import (
	"sort"

	"gitlab.com/chronicle/chronicle"
)

// ListEvents of a member, ascending by year. Events of the same year keep
// their insertion order.
func (k *Keeper) ListEvents(memberID string) []*chronicle.Event {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, _ := k.load()
	events := make([]*chronicle.Event, 0)
	for _, e := range doc.Events {
		if e.MemberID == memberID {
			events = append(events, e)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Year < events[j].Year
	})
	return events
}

// CreateEvent as given. The member and circle are not checked.
func (k *Keeper) CreateEvent(in chronicle.EventInput) (*chronicle.Event, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	event := &chronicle.Event{
		ID:        k.ids.NewID("event"),
		CircleID:  in.CircleID,
		MemberID:  in.MemberID,
		Title:     in.Title,
		Icon:      in.Icon,
		Date:      in.Date,
		Year:      in.Year,
		CreatedAt: chronicle.NewTimestamp(k.now()),
	}

	doc.Events = append(doc.Events, event)
	return event, k.commit(doc, loadErr)
}

// DeleteEvent and its memories. Always reports true, even for an absent
// event; a failed write is only logged and notified.
func (k *Keeper) DeleteEvent(id string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	doc.Memories = withoutEventMemories(doc.Memories, map[string]struct{}{id: {}})

	events := doc.Events[:0]
	for _, e := range doc.Events {
		if e.ID != id {
			events = append(events, e)
		}
	}
	doc.Events = events

	k.commit(doc, loadErr)
	return true
}
