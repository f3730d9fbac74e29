package keeper

import "gitlab.com/chronicle/chronicle"

// ListMemories of an event in insertion order
func (k *Keeper) ListMemories(eventID string) []*chronicle.Memory {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, _ := k.load()
	memories := make([]*chronicle.Memory, 0)
	for _, m := range doc.Memories {
		if m.EventID == eventID {
			memories = append(memories, m)
		}
	}
	return memories
}

// CreateMemory as given, defaulting the compressed size to N/A
func (k *Keeper) CreateMemory(in chronicle.MemoryInput) (*chronicle.Memory, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	memory := &chronicle.Memory{
		ID:             k.ids.NewID("memory"),
		EventID:        in.EventID,
		Title:          in.Title,
		Description:    in.Description,
		Type:           in.Type,
		MediaURL:       in.MediaURL,
		Thumbnail:      in.Thumbnail,
		LinkedAudioURL: in.LinkedAudioURL,
		CompressedSize: in.CompressedSize,
		CreatedAt:      chronicle.NewTimestamp(k.now()),
	}
	if memory.CompressedSize == "" {
		memory.CompressedSize = chronicle.DefaultCompressedSize
	}

	doc.Memories = append(doc.Memories, memory)
	return memory, k.commit(doc, loadErr)
}

// DeleteMemory by id. Always reports true like DeleteEvent.
func (k *Keeper) DeleteMemory(id string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	doc, loadErr := k.load()
	memories := doc.Memories[:0]
	for _, m := range doc.Memories {
		if m.ID != id {
			memories = append(memories, m)
		}
	}
	doc.Memories = memories

	k.commit(doc, loadErr)
	return true
}
