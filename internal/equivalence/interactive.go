package equivalence

import (
	"fmt"

	"github.com/dekarrin/lstar/internal/ioreader"
)

// Interactive is the equivalence oracle variant that shows the hypothesis
// to a human and asks whether it is correct (spec §4.7). On 'n' it asks for
// a counterexample string.
type Interactive struct {
	r ioreader.Reader
}

// NewInteractive creates an Interactive oracle backed by r.
func NewInteractive(r ioreader.Reader) *Interactive {
	return &Interactive{r: r}
}

// Check renders h and asks the user whether it is correct.
func (o *Interactive) Check(h Hypothesis) (Result, error) {
	prompt := fmt.Sprintf("%s\nis this hypothesis correct? [y/n] ", h.String())
	answer, err := o.r.ReadAnswer(prompt)
	if err != nil {
		return Result{}, err
	}

	if len(answer) > 0 && (answer[0] == 'y' || answer[0] == 'Y') {
		return Result{Ok: true}, nil
	}

	cx, err := o.r.ReadAnswer("give a counterexample: ")
	if err != nil {
		return Result{}, err
	}

	return Result{Ok: false, Counterexample: cx}, nil
}
