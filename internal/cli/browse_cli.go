package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hanzideck/hanzideck/internal/deck"
	"github.com/hanzideck/hanzideck/internal/quiz"
	"github.com/hanzideck/hanzideck/internal/study"
)

// BrowseCLI is the main interactive shell: it walks the collection list,
// opens collections for editing, and launches study and quiz sessions. All
// store mutations happen here, one command per loop iteration.
type BrowseCLI struct {
	*Interactive
	store     *deck.Store
	currentID string
	quizOpts  quiz.Options
}

func NewBrowseCLI(store *deck.Store, quizOpts quiz.Options) *BrowseCLI {
	return &BrowseCLI{
		Interactive: newInteractive(),
		store:       store,
		quizOpts:    quizOpts,
	}
}

func (r *BrowseCLI) Session(ctx context.Context) error {
	if r.currentID == "" {
		return r.collectionsSession(ctx)
	}

	// The open collection may have been deleted from the list level; fall
	// back rather than operating on a dead id.
	collection, ok := r.store.Get(r.currentID)
	if !ok {
		r.currentID = ""
		return nil
	}
	return r.collectionSession(ctx, collection)
}

func (r *BrowseCLI) collectionsSession(ctx context.Context) error {
	collections := r.store.ListCollectionsSorted()
	if len(collections) == 0 {
		fmt.Fprintln(r.stdoutWriter, "No collections.")
	}
	for i, collection := range collections {
		fmt.Fprintf(r.stdoutWriter, "%2d. ", i+1)
		_, _ = r.bold.Fprintf(r.stdoutWriter, "%s", collection.Name)
		fmt.Fprintf(r.stdoutWriter, " (%d) — %s\n", len(collection.Cards), collection.Description)
	}
	fmt.Fprint(r.stdoutWriter, "(open <n>, new, rename <n>, delete <n>, search <text>, q) > ")

	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	fmt.Fprintln(r.stdoutWriter)

	command, arg := splitCommand(line)
	switch command {
	case "q":
		return errEnd
	case "open":
		if collection, ok := r.pickCollection(collections, arg); ok {
			r.currentID = collection.ID
		}
	case "new":
		r.createCollection()
	case "rename":
		if collection, ok := r.pickCollection(collections, arg); ok {
			newName := r.prompt("New name")
			r.store.RenameCollection(collection.ID, newName)
		}
	case "delete":
		if collection, ok := r.pickCollection(collections, arg); ok {
			if r.confirm(fmt.Sprintf("Delete collection %q?", collection.Name)) {
				r.store.DeleteCollection(collection.ID)
			}
		}
	case "search":
		RenderSearchResults(r.stdoutWriter, r.store.Search(arg))
		fmt.Fprintln(r.stdoutWriter)
	case "":
	default:
		fmt.Fprintln(r.stdoutWriter, "Unknown command.")
	}
	return nil
}

func (r *BrowseCLI) collectionSession(ctx context.Context, collection *deck.Collection) error {
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s", collection.Name)
	fmt.Fprintf(r.stdoutWriter, " — %s\n", collection.Description)
	for i, card := range collection.Cards {
		fmt.Fprintf(r.stdoutWriter, "%3d. %s\t%s\t%s\t%s\n",
			i+1, card.Character, card.Pinyin, card.Palladius, card.Translation)
	}
	fmt.Fprint(r.stdoutWriter, "(add, edit <n>, del <n>, study, quiz, back, q) > ")

	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	fmt.Fprintln(r.stdoutWriter)

	command, arg := splitCommand(line)
	switch command {
	case "q":
		return errEnd
	case "back":
		r.currentID = ""
	case "add":
		input := r.promptCardInput()
		if _, err := r.store.AddCard(collection.ID, input); err != nil {
			r.notice(err)
		}
	case "edit":
		if card, ok := r.pickCard(collection, arg); ok {
			input := r.promptCardInput()
			if err := r.store.UpdateCard(collection.ID, card.ID, input); err != nil {
				r.notice(err)
			}
		}
	case "del":
		if card, ok := r.pickCard(collection, arg); ok {
			if r.confirm("Delete this card?") {
				r.store.RemoveCard(collection.ID, card.ID)
			}
		}
	case "study":
		return r.runStudy(ctx, collection)
	case "quiz":
		return r.runQuiz(ctx, collection)
	case "":
	default:
		fmt.Fprintln(r.stdoutWriter, "Unknown command.")
	}
	return nil
}

func (r *BrowseCLI) runStudy(ctx context.Context, collection *deck.Collection) error {
	studyCLI, err := newStudyCLIWith(r.Interactive, collection)
	if err != nil {
		if errors.Is(err, study.ErrEmptyCollection) {
			r.notice(err)
			return nil
		}
		return fmt.Errorf("newStudyCLIWith() > %w", err)
	}
	return r.runNested(ctx, studyCLI)
}

func (r *BrowseCLI) runQuiz(ctx context.Context, collection *deck.Collection) error {
	quizCLI, err := newQuizCLIWith(r.Interactive, collection, r.store.CardPool(), r.quizOpts)
	if err != nil {
		if errors.Is(err, quiz.ErrInsufficientCards) {
			r.notice(err)
			return nil
		}
		return fmt.Errorf("newQuizCLIWith() > %w", err)
	}
	defer quizCLI.Close()
	return r.runNested(ctx, quizCLI)
}

// runNested drives a sub-session loop in place, without installing a second
// signal handler.
func (r *BrowseCLI) runNested(ctx context.Context, session Session) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := session.Session(ctx); err != nil {
			if errors.Is(err, errEnd) {
				return nil
			}
			return err
		}
	}
}

func (r *BrowseCLI) createCollection() {
	name := r.prompt("Name")
	description := r.prompt("Description")
	if _, err := r.store.CreateCollection(name, description); err != nil {
		r.notice(err)
	}
}

func (r *BrowseCLI) promptCardInput() deck.CardInput {
	return deck.CardInput{
		Character:   r.prompt("Character"),
		Pinyin:      r.prompt("Pinyin"),
		Palladius:   r.prompt("Palladius"),
		Translation: r.prompt("Translation"),
	}
}

func (r *BrowseCLI) prompt(label string) string {
	fmt.Fprintf(r.stdoutWriter, "%s: ", label)
	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (r *BrowseCLI) confirm(message string) bool {
	fmt.Fprintf(r.stdoutWriter, "%s (y/n): ", message)
	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "y"
}

// notice renders a recoverable error as a non-fatal message.
func (r *BrowseCLI) notice(err error) {
	color.Red("%s", err)
}

func (r *BrowseCLI) pickCollection(collections []*deck.Collection, arg string) (*deck.Collection, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(collections) {
		fmt.Fprintln(r.stdoutWriter, "No such collection.")
		return nil, false
	}
	return collections[n-1], true
}

func (r *BrowseCLI) pickCard(collection *deck.Collection, arg string) (deck.Card, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(collection.Cards) {
		fmt.Fprintln(r.stdoutWriter, "No such card.")
		return deck.Card{}, false
	}
	return collection.Cards[n-1], true
}

// splitCommand separates the command word from its argument, if any.
func splitCommand(line string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	command := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = strings.TrimSpace(fields[1])
	}
	return command, arg
}
