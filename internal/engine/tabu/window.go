package tabu

// WorkingSet is the sliding window of tabu tokens: a FIFO of per-step token
// batches plus an occurrence count per token. A token is tabu while its count
// is at least one, so a token contributed by two recent steps stays tabu until
// both batches have been evicted.
//
// WorkingSet is not safe for concurrent use; Acceptor guards it.
type WorkingSet struct {
	counts map[Token]int
	fifo   [][]Token
}

// NewWorkingSet returns an empty window.
func NewWorkingSet() *WorkingSet {
	return &WorkingSet{counts: make(map[Token]int)}
}

// Contains reports whether t is tabu.
func (w *WorkingSet) Contains(t Token) bool {
	return w.counts[t] > 0
}

// ContainsAny reports whether any of tokens is tabu.
func (w *WorkingSet) ContainsAny(tokens []Token) bool {
	for _, t := range tokens {
		if w.counts[t] > 0 {
			return true
		}
	}
	return false
}

// Count returns the number of retained batches containing t.
func (w *WorkingSet) Count(t Token) int {
	return w.counts[t]
}

// RecordStep appends the tokens of one committed step, then evicts the oldest
// batches until at most maxWindow remain. The window may have shrunk since the
// previous call, so more than one batch can be evicted at once.
func (w *WorkingSet) RecordStep(tokens []Token, maxWindow int) {
	batch := make([]Token, 0, len(tokens))
	seen := make(map[Token]struct{}, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		batch = append(batch, t)
		w.counts[t]++
	}
	w.fifo = append(w.fifo, batch)

	for len(w.fifo) > maxWindow {
		oldest := w.fifo[0]
		w.fifo[0] = nil
		w.fifo = w.fifo[1:]
		for _, t := range oldest {
			if w.counts[t] <= 1 {
				delete(w.counts, t)
			} else {
				w.counts[t]--
			}
		}
	}
}

// Batches returns the number of retained step batches.
func (w *WorkingSet) Batches() int {
	return len(w.fifo)
}

// Tokens returns the number of distinct tabu tokens.
func (w *WorkingSet) Tokens() int {
	return len(w.counts)
}

// Reset empties the window.
func (w *WorkingSet) Reset() {
	clear(w.counts)
	w.fifo = nil
}
