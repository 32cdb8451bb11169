package ais

import (
	"fmt"
	"strings"
)

// StreamKey identifies one in-progress multi-fragment AIS payload.
type StreamKey struct {
	Channel    string
	SequenceID int
}

type stream struct {
	fragments []string
	total     int
	next      int // next fragment number expected.
	lastUsed  uint64
}

// ReassemblyBuffer accumulates AIVDM/AIVDO fragments keyed on
// (channel, sequence_id) and hands back the concatenated bit-armor once the
// final fragment arrives. It is not safe for concurrent use; the owning
// parser instance is expected to synchronize access externally if shared.
type ReassemblyBuffer struct {
	capacity int
	streams  map[StreamKey]*stream
	clock    uint64
}

// DefaultCapacity is the recommended bound on concurrently pending streams.
const DefaultCapacity = 64

func NewReassemblyBuffer(capacity int) *ReassemblyBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ReassemblyBuffer{capacity: capacity, streams: map[StreamKey]*stream{}}
}

// Add appends one fragment's armored payload to the stream identified by
// key. When fragNum completes fragCount, it returns the concatenated
// payload and ready=true; the stream is then forgotten. An out-of-order
// fragment number aborts the in-progress stream and returns an error.
func (b *ReassemblyBuffer) Add(key StreamKey, fragCount, fragNum int, payload string) (assembled string, ready bool, err error) {
	b.clock++

	if fragNum == 1 {
		b.evictIfNeeded(key)
		b.streams[key] = &stream{fragments: make([]string, fragCount), total: fragCount, next: 1, lastUsed: b.clock}
	}

	st, ok := b.streams[key]
	if !ok {
		return "", false, fmt.Errorf("fragment %d arrived without a preceding fragment 1 for stream %+v", fragNum, key)
	}
	if fragNum != st.next || fragNum < 1 || fragNum > st.total {
		delete(b.streams, key)
		return "", false, fmt.Errorf("AIS fragment order")
	}

	st.fragments[fragNum-1] = payload
	st.next++
	st.lastUsed = b.clock

	if fragNum == fragCount {
		var sb strings.Builder
		for _, f := range st.fragments {
			sb.WriteString(f)
		}
		delete(b.streams, key)
		return sb.String(), true, nil
	}
	return "", false, nil
}

// evictIfNeeded drops a stale partial stream at key (a new fragment 1
// replaces whatever was pending) and, if still over capacity, evicts the
// least-recently-updated stream.
func (b *ReassemblyBuffer) evictIfNeeded(key StreamKey) {
	if _, exists := b.streams[key]; exists {
		delete(b.streams, key)
	}
	if len(b.streams) < b.capacity {
		return
	}
	var oldestKey StreamKey
	oldest := ^uint64(0)
	for k, v := range b.streams {
		if v.lastUsed < oldest {
			oldest = v.lastUsed
			oldestKey = k
		}
	}
	delete(b.streams, oldestKey)
}

// Pending reports how many streams are currently in progress.
func (b *ReassemblyBuffer) Pending() int { return len(b.streams) }
