package engine

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// WriteCase writes a single case in human-readable format.
func WriteCase(w io.Writer, target string, c Case) {
	status := "ok  "
	if !c.OK {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s #%d | d/d%s %s\n", status, c.Index, target, c.Tree)
	fmt.Fprintf(w, "       = %s\n", c.Derivative)
	if c.Error != "" {
		fmt.Fprintf(w, "       error: %s\n", c.Error)
		return
	}
	fmt.Fprintf(w, "       symbolic %.10g | numeric %.10g | allowed %.3g\n",
		c.Symbolic, c.Numeric, c.Allowed)
}

// WriteText writes the report in human-readable format. Passing cases are
// listed only when the run was verbose.
func WriteText(w io.Writer, r Report) {
	for _, c := range r.Cases {
		if c.OK && !r.Config.Verbose {
			continue
		}
		WriteCase(w, r.Config.Target, c)
	}
	fmt.Fprintln(w, "\n========== CHECK RESULT ==========")
	fmt.Fprintf(w, "Run:       %s\n", r.RunID)
	fmt.Fprintf(w, "Pool:      %s\n", r.Config.Pool)
	fmt.Fprintf(w, "Target:    %s\n", r.Config.Target)
	fmt.Fprintf(w, "Seed:      %d\n", r.Config.Seed)
	fmt.Fprintf(w, "Checked:   %d\n", len(r.Cases))
	fmt.Fprintf(w, "Passed:    %d\n", r.Passed)
	fmt.Fprintf(w, "Failed:    %d\n", r.Failed)
	fmt.Fprintf(w, "Duration:  %s\n", r.Duration)
	fmt.Fprintln(w, "==================================")
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
