package keeper

import "gitlab.com/chronicle/chronicle"

// ListMembers of a circle in insertion order
func (k *Keeper) ListMembers(circleID string) []*chronicle.Member {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, _ := k.load()
	members := make([]*chronicle.Member, 0)
	for _, m := range doc.Members {
		if m.CircleID == circleID {
			members = append(members, m)
		}
	}
	return members
}

// CreateMember in circleID and bump the circle's member count if the
// circle exists. The circle is not required to exist.
func (k *Keeper) CreateMember(circleID string, in chronicle.MemberInput) (*chronicle.Member, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	member := &chronicle.Member{
		ID:        k.ids.NewID("member"),
		CircleID:  circleID,
		Name:      in.Name,
		Avatar:    in.Avatar,
		IsAdmin:   in.IsAdmin,
		CreatedAt: chronicle.NewTimestamp(k.now()),
	}
	if member.Avatar == "" {
		member.Avatar = chronicle.DefaultMemberAvatar
	}

	doc.Members = append(doc.Members, member)
	if circle := doc.FindCircle(circleID); circle != nil {
		circle.MemberCount++
	}
	return member, k.commit(doc, loadErr)
}

// DeleteMember with its events and their memories. Returns false without
// touching the document if the member does not exist.
func (k *Keeper) DeleteMember(id string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	member := doc.FindMember(id)
	if member == nil {
		return false
	}

	eventIDs := make(map[string]struct{})
	events := doc.Events[:0]
	for _, e := range doc.Events {
		if e.MemberID == id {
			eventIDs[e.ID] = struct{}{}
			continue
		}
		events = append(events, e)
	}
	doc.Memories = withoutEventMemories(doc.Memories, eventIDs)
	doc.Events = events

	members := doc.Members[:0]
	for _, m := range doc.Members {
		if m.ID != id {
			members = append(members, m)
		}
	}
	doc.Members = members

	if circle := doc.FindCircle(member.CircleID); circle != nil && circle.MemberCount > 0 {
		circle.MemberCount--
	}
	return k.commit(doc, loadErr) == nil
}
