package rpl48

// Scribble is a scope guard over the heap's scratchpad: it stakes out a
// region at the current scratch boundary, lets the caller Append raw
// payload bytes to it, and finishes with either Seal, which prefixes a
// tag and commits the bytes as a permanent store object, or Discard,
// which abandons them. Scribbles do not nest: OpenScribble panics while
// another Scribble is open and unfinished, and a finished Scribble
// panics on a second Seal or Discard.
type Scribble struct {
	heap   *Heap
	mark   int
	closed bool
}

// OpenScribble stakes out a new scratchpad region starting at the
// current scratch boundary. Panics if called while an outer scribble is
// already open and unfinished, since at most one scribble may be
// actively appending at a time.
func (h *Heap) OpenScribble() *Scribble {
	if h.scratching {
		panic("rpl48: OpenScribble called while another scribble is open")
	}
	h.scratching = true
	return &Scribble{heap: h, mark: h.scratchEnd}
}

// Len returns the number of bytes appended to the scribble so far.
func (s *Scribble) Len() int { return s.heap.scratchEnd - s.mark }

// Append writes b to the end of the scribble's region, growing the
// scratchpad. Returns false if the arena has no room.
func (s *Scribble) Append(b []byte) bool {
	h := s.heap
	if h.scratchEnd+len(b) > h.retTop {
		return false
	}
	copy(h.mem[h.scratchEnd:], b)
	h.scratchEnd += len(b)
	return true
}

// AppendByte appends a single byte.
func (s *Scribble) AppendByte(b byte) bool {
	return s.Append([]byte{b})
}

// AppendVLI appends the VLI encoding of v.
func (s *Scribble) AppendVLI(v uint64) bool {
	return s.Append(PutVLI(nil, v))
}

// Bytes returns the scribble's current contents without sealing it. The
// returned slice aliases the heap and is invalidated by any further
// allocation or collection.
func (s *Scribble) Bytes() []byte {
	return s.heap.mem[s.mark:s.heap.scratchEnd]
}

// Seal prefixes the scribble's accumulated bytes with tag's VLI encoding
// and a VLI length field, committing the result as a new store object.
// The scribble must be the innermost open one. Returns HandleInvalid,
// false if the arena has no room for the header.
func (s *Scribble) Seal(tag Tag) (Handle, bool) {
	h := s.heap
	if s.closed {
		panic("rpl48: Seal called on an already-finished scribble")
	}
	payloadLen := h.scratchEnd - s.mark
	var header []byte
	header = PutVLI(header, uint64(tag))
	header = PutVLI(header, uint64(payloadLen))
	need := len(header)

	if h.scratchEnd+need > h.retTop {
		s.closed = true
		h.scratching = false
		return HandleInvalid, false
	}

	// Shift the payload right by need bytes to make room for the header
	// immediately before it, then write the header into the gap.
	copy(h.mem[s.mark+need:h.scratchEnd+need], h.mem[s.mark:h.scratchEnd])
	copy(h.mem[s.mark:], header)

	objStart := s.mark
	h.storeEnd = s.mark + need + payloadLen
	h.scratchEnd = h.storeEnd
	s.closed = true
	h.scratching = false
	return Handle(objStart), true
}

// Discard abandons the scribble's bytes, rewinding the scratchpad back
// to where the scribble was opened.
func (s *Scribble) Discard() {
	if s.closed {
		panic("rpl48: Discard called on an already-finished scribble")
	}
	h := s.heap
	h.scratchEnd = s.mark
	s.closed = true
	h.scratching = false
}
