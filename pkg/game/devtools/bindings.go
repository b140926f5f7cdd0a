package devtools

import (
	"fmt"
	"io"
	"sort"
	"strings"

	engineinput "raymarch/pkg/engine/input"
)

// WriteBindings lists every action with the keys bound to it, one per line.
func WriteBindings(w io.Writer) error {
	byAction := engineinput.GetBindingsByAction()

	actions := make([]engineinput.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		codes := strings.Join(byAction[a], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		if _, err := fmt.Fprintf(w, "%-14s %s\n", engineinput.ActionName(a)+":", codes); err != nil {
			return fmt.Errorf("write bindings: %w", err)
		}
	}
	return nil
}
