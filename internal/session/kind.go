package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/muurk/ultinotes/internal/ui"
)

// Kind is a type of document. It picks the file suffix and the input mode.
type Kind struct {
	Choice string
	Label  string
	Suffix string
	// Aligned selects key/description entry instead of free text.
	Aligned bool
}

// Kinds are the numbered choices offered to the user.
var Kinds = []Kind{
	{Choice: "1", Label: "Controls", Suffix: "controls", Aligned: true},
	{Choice: "2", Label: "Usage", Suffix: "usage"},
	{Choice: "3", Label: "Tips", Suffix: "tips"},
	{Choice: "4", Label: "Cheats", Suffix: "cheats"},
	{Choice: "5", Label: "Full Manual", Suffix: "full_manual"},
}

// NotesKind is used for any answer that is not a listed choice.
var NotesKind = Kind{Label: "Notes", Suffix: "notes"}

// KindForChoice maps a menu answer to a Kind.
func KindForChoice(choice string) Kind {
	for _, k := range Kinds {
		if k.Choice == choice {
			return k
		}
	}
	return NotesKind
}

// ChooseKind asks which kind of document to create.
func ChooseKind(pr *ui.Prompter, out *ui.Printer) (Kind, error) {
	labels := make([]string, len(Kinds))
	for i, k := range Kinds {
		labels[i] = k.Label
	}

	out.Newline()
	out.Println("What type of file would you like to create?")
	out.Print(ui.RenderChoices(labels))

	choice, err := pr.Ask(fmt.Sprintf("Choice [1-%d]: ", len(Kinds)))
	if errors.Is(err, io.EOF) {
		return Kind{}, ErrQuit
	}
	if err != nil {
		return Kind{}, err
	}
	return KindForChoice(choice), nil
}
