package keeper

import (
	"fmt"

	"gitlab.com/chronicle/chronicle"
)

// ViolationKind classifies a broken reference or counter
type ViolationKind int8

const (
	// OrphanMember references a missing circle
	OrphanMember ViolationKind = iota
	// OrphanEvent references a missing member
	OrphanEvent
	// OrphanMemory references a missing event
	OrphanMemory
	// CircleMismatch event circle differs from its member's circle
	CircleMismatch
	// CountDrift memberCount differs from the members in the circle
	CountDrift
)

var violationKindMap = map[ViolationKind]string{
	OrphanMember:   "orphan member",
	OrphanEvent:    "orphan event",
	OrphanMemory:   "orphan memory",
	CircleMismatch: "circle mismatch",
	CountDrift:     "member count drift",
}

func (v ViolationKind) String() string {
	return violationKindMap[v]
}

// Violation of the hierarchy found by Check
type Violation struct {
	Kind     ViolationKind
	RecordID string
	Detail   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Kind, v.RecordID, v.Detail)
}

// Check doc for references to missing parents and member count drift. The
// document is not modified.
func Check(doc *chronicle.Document) []Violation {
	violations := make([]Violation, 0)

	counts := make(map[string]int, len(doc.Circles))
	for _, m := range doc.Members {
		if doc.FindCircle(m.CircleID) == nil {
			violations = append(violations, Violation{OrphanMember, m.ID, "circle " + m.CircleID + " does not exist"})
			continue
		}
		counts[m.CircleID]++
	}

	for _, e := range doc.Events {
		member := doc.FindMember(e.MemberID)
		if member == nil {
			violations = append(violations, Violation{OrphanEvent, e.ID, "member " + e.MemberID + " does not exist"})
			continue
		}
		if member.CircleID != e.CircleID {
			violations = append(violations, Violation{CircleMismatch, e.ID, fmt.Sprintf("event circle %s, member circle %s", e.CircleID, member.CircleID)})
		}
	}

	for _, m := range doc.Memories {
		if doc.FindEvent(m.EventID) == nil {
			violations = append(violations, Violation{OrphanMemory, m.ID, "event " + m.EventID + " does not exist"})
		}
	}

	for _, c := range doc.Circles {
		if c.MemberCount != counts[c.ID] {
			violations = append(violations, Violation{CountDrift, c.ID, fmt.Sprintf("memberCount %d, members %d", c.MemberCount, counts[c.ID])})
		}
	}
	return violations
}

// Check the persisted document
func (k *Keeper) Check() []Violation {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, _ := k.load()
	return Check(doc)
}

// Reconcile recomputes every circle's memberCount from its members and
// returns how many circles were corrected. Nothing is written when no
// circle drifted.
func (k *Keeper) Reconcile() (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, err := k.load()
	if err != nil {
		return 0, &chronicle.SaveError{Err: err}
	}
	counts := make(map[string]int, len(doc.Circles))
	for _, m := range doc.Members {
		counts[m.CircleID]++
	}

	fixed := 0
	for _, c := range doc.Circles {
		if c.MemberCount != counts[c.ID] {
			c.MemberCount = counts[c.ID]
			fixed++
		}
	}

	if fixed == 0 {
		return 0, nil
	}
	return fixed, k.save(doc)
}
