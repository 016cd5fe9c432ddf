// Package quiz implements the multiple-choice quiz session: a randomized
// pass over a collection with scoring and a delayed advance between
// questions.
package quiz

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/hanzideck/hanzideck/internal/deck"
)

var (
	// ErrInsufficientCards is returned when a quiz is started on a
	// collection with fewer than MinCards cards.
	ErrInsufficientCards = errors.New("quiz needs at least 4 cards")
	// ErrInvalidState is returned when a session command arrives in a state
	// that does not accept it, e.g. answering an already answered question.
	ErrInvalidState = errors.New("quiz session does not accept this command in its current state")
)

const (
	// MinCards is the smallest collection a quiz can run on: the question
	// card plus three distinct options.
	MinCards = 4

	// DefaultAdvanceDelay is how long the result of an answer stays on
	// screen before the next question.
	DefaultAdvanceDelay = 1500 * time.Millisecond

	defaultOptionCount = 4
)

// Scheduler defers fn by delay and returns a cancel function. The default
// uses time.AfterFunc; tests inject a synchronous one.
type Scheduler func(delay time.Duration, fn func()) (cancel func())

func afterFuncScheduler(delay time.Duration, fn func()) func() {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}

// Options tune a session. The zero value selects defaults.
type Options struct {
	// OptionCount is the number of options presented per question,
	// including the correct one.
	OptionCount int
	// AdvanceDelay is the pause between answering and the next question.
	AdvanceDelay time.Duration
	// Rand drives shuffling. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Schedule defers the advance after an answer.
	Schedule Scheduler
	// OnAdvance is called after the session moves to the next question or
	// finishes, so the presentation layer can re-render.
	OnAdvance func()
}

// Question is the current prompt: the card being asked and the shuffled
// options to choose from.
type Question struct {
	Card    deck.Card
	Options []deck.Card
	Number  int
	Total   int
}

// Session runs one quiz over a shuffled snapshot of a collection's cards.
// Distractors are drawn from the full cross-collection pool. The delayed
// advance fires on a timer goroutine, so internal state is mutex-guarded.
//
// A session is single-use: once closed or finished it cannot be restarted.
type Session struct {
	mu sync.Mutex

	cards   []deck.Card
	pool    []deck.Card
	index   int
	correct int
	wrong   int

	answered bool
	finished bool
	closed   bool
	options  []deck.Card

	opts          Options
	cancelAdvance func()
}

// Start begins a quiz over a shuffled copy of the collection's cards. The
// pool supplies wrong options and normally spans every collection in the
// store.
func Start(collection *deck.Collection, pool []deck.Card, opts Options) (*Session, error) {
	if len(collection.Cards) < MinCards {
		return nil, ErrInsufficientCards
	}

	if opts.OptionCount <= 0 {
		opts.OptionCount = defaultOptionCount
	}
	if opts.AdvanceDelay <= 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Schedule == nil {
		opts.Schedule = afterFuncScheduler
	}

	cards := collection.SnapshotCards()
	opts.Rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	session := &Session{
		cards: cards,
		pool:  append([]deck.Card{}, pool...),
		opts:  opts,
	}
	session.generateOptions()
	return session, nil
}

// CurrentQuestion returns the prompt for the question the session is on. The
// option set is generated once per question, so repeated calls are stable.
func (s *Session) CurrentQuestion() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.finished {
		return Question{}, ErrInvalidState
	}
	return Question{
		Card:    s.cards[s.index],
		Options: append([]deck.Card{}, s.options...),
		Number:  s.index + 1,
		Total:   len(s.cards),
	}, nil
}

// Answer records the selected option for the current question and schedules
// the advance to the next one. Correctness compares character text, not card
// ids: homographs sharing character text are treated as equivalent answers.
// Answering twice, or after the session finished or closed, fails with
// ErrInvalidState.
func (s *Session) Answer(selected deck.Card) (bool, error) {
	s.mu.Lock()
	if s.closed || s.finished || s.answered {
		s.mu.Unlock()
		return false, ErrInvalidState
	}

	correct := selected.Character == s.cards[s.index].Character
	if correct {
		s.correct++
	} else {
		s.wrong++
	}
	s.answered = true
	delay := s.opts.AdvanceDelay
	schedule := s.opts.Schedule
	s.mu.Unlock()

	cancel := schedule(delay, s.advance)

	s.mu.Lock()
	if s.answered && !s.closed {
		s.cancelAdvance = cancel
	}
	s.mu.Unlock()
	return correct, nil
}

// advance moves to the next question, or finishes after the last one.
func (s *Session) advance() {
	s.mu.Lock()
	if s.closed || s.finished || !s.answered {
		s.mu.Unlock()
		return
	}
	s.cancelAdvance = nil
	s.answered = false
	s.index++
	if s.index >= len(s.cards) {
		s.finished = true
	} else {
		s.generateOptions()
	}
	onAdvance := s.opts.OnAdvance
	s.mu.Unlock()

	if onAdvance != nil {
		onAdvance()
	}
}

// generateOptions builds the option set for the current question: the
// correct card plus up to OptionCount-1 distractors whose character and
// translation both differ from it, shuffled so the correct answer's position
// is uniform. Called with s.mu held.
func (s *Session) generateOptions() {
	correct := s.cards[s.index]

	var candidates []deck.Card
	for _, card := range s.pool {
		if correct.ConflictsWith(card) {
			continue
		}
		candidates = append(candidates, card)
	}
	s.opts.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := []deck.Card{correct}
	for i := 0; i < s.opts.OptionCount-1 && i < len(candidates); i++ {
		options = append(options, candidates[i])
	}
	s.opts.Rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	s.options = options
}

// Close invalidates the session and cancels any pending advance, so a timer
// scheduled before an exit cannot fire against a dead session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancelAdvance != nil {
		s.cancelAdvance()
		s.cancelAdvance = nil
	}
}

// Finished reports whether the session advanced past its last question.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Correct returns the number of correctly answered questions so far.
func (s *Session) Correct() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct
}

// Wrong returns the number of incorrectly answered questions so far.
func (s *Session) Wrong() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrong
}

// Accuracy returns the percentage of correct answers rounded to the nearest
// integer, or 0 when nothing was answered.
func (s *Session) Accuracy() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.correct + s.wrong
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.correct) / float64(total)))
}
