package probe

import (
	"fmt"
	"io"
	"strings"

	"gemprobe/internal/ai"
)

const separatorWidth = 60

func separator(c byte) string {
	return strings.Repeat(string(c), separatorWidth)
}

// Banner prints a fixed-width titled banner.
func Banner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", separator('='), title, separator('='))
}

// Summary prints one line per probe with a pass/fail marker, plus the total
// token consumption when the API reported any.
func Summary(w io.Writer, results []Result) {
	Banner(w, "Test Summary")
	var total ai.Usage
	for _, res := range results {
		status := "❌ FAILED"
		if res.Passed {
			status = "✅ PASSED"
		}
		fmt.Fprintf(w, "%-20s : %s\n", res.Label, status)
		total = total.Add(res.Usage)
	}
	if total.TotalTokens > 0 {
		fmt.Fprintf(w, "Tokens used: %d prompt, %d output, %d total\n",
			total.PromptTokens, total.OutputTokens, total.TotalTokens)
	}
	fmt.Fprintf(w, "%s\n\n", separator('='))
}

// AllPassed reports whether every result succeeded.
func AllPassed(results []Result) bool {
	for _, res := range results {
		if !res.Passed {
			return false
		}
	}
	return true
}
