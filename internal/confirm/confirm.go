// Package confirm abstracts destructive-action confirmation as a pluggable
// capability, so it can be a terminal prompt, a dialog, or an API flag.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Func answers whether the user approved the prompted action. Destructive
// operations treat a nil Func as a refusal, so forgetting to wire one
// fails safe.
type Func func(prompt string) bool

// Always approves every prompt. For callers that already confirmed
// out-of-band (e.g. a --yes flag).
func Always(string) bool { return true }

// Never refuses every prompt.
func Never(string) bool { return false }

// Prompt returns a Func that asks interactively on out and reads a y/yes
// answer from in. Anything else, including read errors, is a refusal.
func Prompt(in io.Reader, out io.Writer) Func {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
