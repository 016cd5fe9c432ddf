package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hanzideck/hanzideck/internal/deck"
	"github.com/hanzideck/hanzideck/internal/quiz"
)

// QuizCLI runs the interactive multiple-choice session over one collection.
type QuizCLI struct {
	*Interactive
	collectionName string
	session        *quiz.Session
	advanced       chan struct{}
}

// NewQuizCLI starts a quiz session. Collections with fewer than
// quiz.MinCards cards fail with quiz.ErrInsufficientCards.
func NewQuizCLI(collection *deck.Collection, pool []deck.Card, opts quiz.Options) (*QuizCLI, error) {
	return newQuizCLIWith(newInteractive(), collection, pool, opts)
}

func newQuizCLIWith(interactive *Interactive, collection *deck.Collection, pool []deck.Card, opts quiz.Options) (*QuizCLI, error) {
	cli := &QuizCLI{
		Interactive:    interactive,
		collectionName: collection.Name,
		advanced:       make(chan struct{}, 1),
	}
	opts.OnAdvance = cli.notifyAdvance

	session, err := quiz.Start(collection, pool, opts)
	if err != nil {
		return nil, err
	}
	cli.session = session
	return cli, nil
}

// Close invalidates the underlying session, cancelling a pending advance.
func (r *QuizCLI) Close() {
	r.session.Close()
}

func (r *QuizCLI) notifyAdvance() {
	select {
	case r.advanced <- struct{}{}:
	default:
	}
}

func (r *QuizCLI) Session(ctx context.Context) error {
	if r.session.Finished() {
		r.printResults()
		return errEnd
	}

	question, err := r.session.CurrentQuestion()
	if err != nil {
		return fmt.Errorf("session.CurrentQuestion() > %w", err)
	}

	fmt.Fprintf(r.stdoutWriter, "Question %d / %d\n", question.Number, question.Total)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "  %s\n", question.Card.Character)
	for i, option := range question.Options {
		fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, option.Translation)
	}
	fmt.Fprintf(r.stdoutWriter, "Your answer (1-%d): ", len(question.Options))

	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(question.Options) {
		fmt.Fprintf(r.stdoutWriter, "Enter a number between 1 and %d.\n\n", len(question.Options))
		return nil
	}

	selected := question.Options[choice-1]
	correct, err := r.session.Answer(selected)
	if err != nil {
		return fmt.Errorf("session.Answer() > %w", err)
	}

	if correct {
		fmt.Fprint(r.stdoutWriter, "✅ ")
		color.Green(`Correct! %s means "%s"`,
			r.bold.Sprintf("%s", question.Card.Character),
			r.italic.Sprintf("%s", question.Card.Translation),
		)
	} else {
		fmt.Fprint(r.stdoutWriter, "❌ ")
		color.Red(`Wrong. %s means "%s"`,
			r.bold.Sprintf("%s", question.Card.Character),
			r.italic.Sprintf("%s", question.Card.Translation),
		)
	}
	fmt.Fprintln(r.stdoutWriter)

	// Block until the delayed advance moves the session forward, so the
	// result stays on screen.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.advanced:
	}
	return nil
}

func (r *QuizCLI) printResults() {
	fmt.Fprintf(r.stdoutWriter, "Quiz finished: %s\n", r.collectionName)
	fmt.Fprintf(r.stdoutWriter, "  Correct: %d\n", r.session.Correct())
	fmt.Fprintf(r.stdoutWriter, "  Wrong:   %d\n", r.session.Wrong())
	fmt.Fprintf(r.stdoutWriter, "  Accuracy: %d%%\n", r.session.Accuracy())
}
