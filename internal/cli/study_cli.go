package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanzideck/hanzideck/internal/deck"
	"github.com/hanzideck/hanzideck/internal/study"
)

// StudyCLI runs the interactive flip-card session over one collection.
type StudyCLI struct {
	*Interactive
	collectionName string
	session        *study.Session
}

// NewStudyCLI starts a study session over the collection. An empty
// collection fails with study.ErrEmptyCollection.
func NewStudyCLI(collection *deck.Collection) (*StudyCLI, error) {
	return newStudyCLIWith(newInteractive(), collection)
}

func newStudyCLIWith(interactive *Interactive, collection *deck.Collection) (*StudyCLI, error) {
	session, err := study.Start(collection)
	if err != nil {
		return nil, err
	}
	return &StudyCLI{
		Interactive:    interactive,
		collectionName: collection.Name,
		session:        session,
	}, nil
}

// CardCount returns the number of cards in the session.
func (r *StudyCLI) CardCount() int {
	return r.session.Len()
}

func (r *StudyCLI) Session(ctx context.Context) error {
	card := r.session.Current()

	fmt.Fprintf(r.stdoutWriter, "Card %d / %d  %s\n",
		r.session.Index()+1, r.session.Len(), progressBar(r.session.ProgressFraction()))
	_, _ = r.bold.Fprintf(r.stdoutWriter, "  %s", card.Character)
	fmt.Fprintf(r.stdoutWriter, "  %s\n", card.Pinyin)
	if r.session.Flipped() {
		_, _ = r.italic.Fprintf(r.stdoutWriter, "  %s", card.Palladius)
		fmt.Fprintf(r.stdoutWriter, " — %s\n", card.Translation)
	}
	fmt.Fprint(r.stdoutWriter, "(enter: flip, n: next, p: prev, q: quit) > ")

	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	fmt.Fprintln(r.stdoutWriter)

	switch strings.TrimSpace(line) {
	case "":
		r.session.Flip()
	case "n":
		r.session.Next()
	case "p":
		r.session.Prev()
	case "q":
		return errEnd
	default:
		fmt.Fprintln(r.stdoutWriter, "Unknown command. Use enter, n, p or q.")
	}
	return nil
}

// progressBar renders a ten-segment bar for a fraction in (0, 1].
func progressBar(fraction float64) string {
	filled := int(fraction * 10)
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("-", 10-filled),
		int(fraction*100))
}
