package membership

import (
	"fmt"

	"github.com/dekarrin/lstar/internal/ioreader"
)

// Interactive is the membership oracle variant that prompts a human for
// each query (spec §4.1). The first character of the answer decides it:
// 'y' or 'Y' means w ∈ L, anything else means w ∉ L.
type Interactive struct {
	r ioreader.Reader

	// Display renders w for the prompt. Defaults to the raw string if nil;
	// callers with a non-trivial alphabet (e.g. rune alphabets, where ε is
	// the raw string "" and may be better shown as "ε") may want to override
	// this.
	Display func(w string) string
}

// NewInteractive creates an Interactive oracle backed by r.
func NewInteractive(r ioreader.Reader) *Interactive {
	return &Interactive{r: r}
}

// Ask prompts the user with w and interprets their answer.
func (o *Interactive) Ask(w string) (bool, error) {
	display := w
	if o.Display != nil {
		display = o.Display(w)
	}

	answer, err := o.r.ReadAnswer(fmt.Sprintf("is %q in L? [y/n] ", display))
	if err != nil {
		return false, err
	}

	if len(answer) == 0 {
		return false, nil
	}
	return answer[0] == 'y' || answer[0] == 'Y', nil
}
