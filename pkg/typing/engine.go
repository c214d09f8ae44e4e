package typing

import "golang.org/x/text/unicode/norm"

// CharState is the render state of one target character.
type CharState int

const (
	StateUntyped CharState = iota
	StateCorrect
	StateCurrent
	StatePending
	StateIncorrect
)

// Result describes the outcome of one input event.
type Result struct {
	// Index is the confirmed-correct character count into the target.
	Index int
	// Words is the completed-word count after this event.
	Words int
	// WordCompleted is set when this event pushed the cursor past at
	// least one word boundary.
	WordCompleted bool
	// Pending is set when the buffer ends mid-way through a known
	// substitution sequence; the engine keeps accumulating.
	Pending bool
	// Rejected is set on a mismatch: the unconfirmed keystrokes were
	// cleared and the cursor did not move. Recoverable, shown as a
	// transient highlight only.
	Rejected bool
	// Ignored is set when the event carried a shorter buffer than the
	// accepted input; typed characters are never retracted.
	Ignored bool
	// Finished is set once the cursor reached the end of the target.
	Finished bool
}

// Engine incrementally validates a user's keystrokes against a canonical
// target text. Each input event carries the full current buffer content,
// which may only grow; the confirmed cursor only ever advances. Not safe for
// concurrent use; it runs synchronously on the input event path.
type Engine struct {
	target     []rune
	boundaries []int

	// typed holds every accepted keystroke; the first consumed of them
	// are confirmed into index target characters, the rest are the
	// unconfirmed tail of the buffer.
	typed    []rune
	consumed int
	index    int

	words    int
	rejected bool
}

// NewEngine builds an engine over an already-canonical target text.
func NewEngine(target string) *Engine {
	runes := []rune(norm.NFC.String(target))
	return &Engine{target: runes, boundaries: wordBoundaries(runes)}
}

// NewEngineForContent derives the canonical target from stored paragraph
// content and builds an engine over it.
func NewEngineForContent(content string) *Engine {
	return NewEngine(DeriveTarget(content))
}

func (e *Engine) Target() string { return string(e.target) }
func (e *Engine) Index() int     { return e.index }
func (e *Engine) Words() int     { return e.words }

// TypedInput returns every accepted keystroke so far; the next input event
// must carry it as a prefix.
func (e *Engine) TypedInput() string { return string(e.typed) }

// Buffer returns the unconfirmed tail of the accepted input.
func (e *Engine) Buffer() string { return string(e.typed[e.consumed:]) }

// TotalWords is the number of words in the whole target.
func (e *Engine) TotalWords() int { return len(e.boundaries) }

// Finished reports whether the whole target has been confirmed.
func (e *Engine) Finished() bool { return e.index >= len(e.target) }

// Input consumes the full current buffer content against the remaining
// target. Exact matches (after NFC normalization and quote folding) advance
// one character; substitution sequences advance the typed cursor by the
// sequence length and the target cursor by one; a buffer ending on a valid
// sequence prefix is held as pending; anything else is a reject that clears
// the unconfirmed keystrokes and leaves the cursor in place.
func (e *Engine) Input(buffer string) Result {
	runes := []rune(norm.NFC.String(buffer))
	if len(runes) < len(e.typed) {
		return Result{Index: e.index, Words: e.words, Ignored: true, Finished: e.Finished()}
	}
	e.rejected = false

	prevWords := e.words
	i := e.consumed
	pending := false

consume:
	for i < len(runes) && e.index < len(e.target) {
		expected := e.target[e.index]
		if matchesExact(runes[i], expected) {
			i++
			e.index++
			continue
		}
		partial := false
		for _, seq := range substitutions[expected] {
			sr := []rune(seq)
			if hasRunePrefix(runes[i:], sr) {
				i += len(sr)
				e.index++
				continue consume
			}
			if isPartialSequence(runes[i:], sr) {
				partial = true
			}
		}
		if partial {
			pending = true
			break
		}
		// Mismatch: keep what this event already confirmed, drop the rest.
		e.typed = append(e.typed[:0], runes[:i]...)
		e.consumed = i
		e.rejected = true
		e.words = e.completedWords()
		return Result{Index: e.index, Words: e.words, Rejected: true, Finished: e.Finished()}
	}

	e.typed = append(e.typed[:0], runes...)
	e.consumed = i
	e.words = e.completedWords()
	return Result{
		Index:         e.index,
		Words:         e.words,
		WordCompleted: e.words > prevWords,
		Pending:       pending,
		Finished:      e.Finished(),
	}
}

func (e *Engine) completedWords() int {
	n := 0
	for _, b := range e.boundaries {
		if b > e.index {
			break
		}
		n++
	}
	return n
}

// States returns the render state of every target character: confirmed
// characters are correct, the cursor position is current (or pending while a
// substitution sequence accumulates, or incorrect right after a reject), and
// the rest are untyped.
func (e *Engine) States() []CharState {
	states := make([]CharState, len(e.target))
	for i := range states {
		switch {
		case i < e.index:
			states[i] = StateCorrect
		case i == e.index:
			switch {
			case e.rejected:
				states[i] = StateIncorrect
			case e.consumed < len(e.typed):
				states[i] = StatePending
			default:
				states[i] = StateCurrent
			}
		default:
			states[i] = StateUntyped
		}
	}
	return states
}
