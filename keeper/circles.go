package keeper

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/chronicle/chronicle"
)

// DeleteCirclePrompt is passed to the Confirmer before deleting a circle
const DeleteCirclePrompt = "Delete this circle?"

// ListCircles in insertion order
func (k *Keeper) ListCircles() []*chronicle.Circle {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, _ := k.load()
	return doc.Circles
}

// CreateCircle with a generated id, default color and zero members. The
// returned error matches ErrNotSaved if the record could not be persisted.
func (k *Keeper) CreateCircle(in chronicle.CircleInput) (*chronicle.Circle, error) {
	if in.Name == "" || in.Icon == "" {
		return nil, errors.Wrap(chronicle.ErrInvalidInput, "circle requires a name and an icon")
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	circle := &chronicle.Circle{
		ID:          k.ids.NewID("circle"),
		Name:        in.Name,
		Icon:        in.Icon,
		Color:       in.Color,
		CreatedAt:   chronicle.NewTimestamp(k.now()),
		MemberCount: 0,
	}
	if circle.Color == "" {
		circle.Color = chronicle.DefaultCircleColor
	}

	doc.Circles = append(doc.Circles, circle)
	return circle, k.commit(doc, loadErr)
}

// DeleteCircle and every member, event and memory under it once the
// Confirmer agrees. Returns false when not confirmed or not saved.
func (k *Keeper) DeleteCircle(id string) bool {
	if !k.confirmer.Confirm(DeleteCirclePrompt) {
		log.Info().Str("circle", id).Msg("circle deletion cancelled")
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()

	eventIDs := make(map[string]struct{})
	for _, e := range doc.Events {
		if e.CircleID == id {
			eventIDs[e.ID] = struct{}{}
		}
	}

	circles := doc.Circles[:0]
	for _, c := range doc.Circles {
		if c.ID != id {
			circles = append(circles, c)
		}
	}
	doc.Circles = circles

	members := doc.Members[:0]
	for _, m := range doc.Members {
		if m.CircleID != id {
			members = append(members, m)
		}
	}
	doc.Members = members

	doc.Memories = withoutEventMemories(doc.Memories, eventIDs)

	events := doc.Events[:0]
	for _, e := range doc.Events {
		if e.CircleID != id {
			events = append(events, e)
		}
	}
	doc.Events = events

	return k.commit(doc, loadErr) == nil
}

// withoutEventMemories filters out memories attached to any of eventIDs
func withoutEventMemories(memories []*chronicle.Memory, eventIDs map[string]struct{}) []*chronicle.Memory {
	kept := memories[:0]
	for _, m := range memories {
		if _, ok := eventIDs[m.EventID]; !ok {
			kept = append(kept, m)
		}
	}
	return kept
}
