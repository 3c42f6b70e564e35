package waveform

// History is a bounded ring buffer of normalized amplitude samples. The
// oldest sample is evicted when a push exceeds capacity.
//
// History is owned exclusively by a Session, which serializes access; it is
// not safe for unsynchronized concurrent use on its own.
type History struct {
	samples []float64
	head    int // next write position
	count   int
}

// NewHistory creates a History holding up to capacity samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{samples: make([]float64, capacity)}
}

// Push appends a sample, evicting the oldest if the buffer is full.
func (h *History) Push(v float64) {
	h.samples[h.head] = v
	h.head = (h.head + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Values returns the buffered samples in chronological order.
func (h *History) Values() []float64 {
	out := make([]float64, h.count)
	capacity := len(h.samples)
	start := (h.head - h.count + capacity) % capacity
	for i := 0; i < h.count; i++ {
		out[i] = h.samples[(start+i)%capacity]
	}
	return out
}

// Len returns the number of buffered samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return len(h.samples)
}

// Clear drops all buffered samples.
func (h *History) Clear() {
	h.head = 0
	h.count = 0
}

// Resize changes the capacity, keeping the most recent samples that fit.
func (h *History) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(h.samples) {
		return
	}

	values := h.Values()
	if len(values) > capacity {
		values = values[len(values)-capacity:]
	}

	h.samples = make([]float64, capacity)
	h.head = 0
	h.count = 0
	for _, v := range values {
		h.Push(v)
	}
}
