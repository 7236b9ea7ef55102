// Package probe runs self-contained, single-call smoke tests against a text
// generator and reports a pass/fail outcome for each.
package probe

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gemprobe/internal/ai"
)

// Probe describes one test of a single API call pattern.
type Probe struct {
	Label  string
	Prompt string
	// Config carries sampling overrides for the call; nil means remote defaults.
	Config *ai.GenerateConfig
}

// Result is the outcome of one probe.
type Result struct {
	Label  string
	Passed bool
	Usage  ai.Usage
}

// Suite returns the three standard probes in execution order: a plain prompt,
// a multi-sentence prompt, and a prompt with sampling overrides.
func Suite() []Probe {
	return []Probe{
		{
			Label:  "Basic Connection",
			Prompt: "Say 'Hello, API test successful!' and nothing else.",
		},
		{
			Label: "Complex Request",
			Prompt: "Explain the concept of recursion in programming in 2-3 sentences.\n" +
				"Provide a simple example.",
		},
		{
			Label:  "Custom Config",
			Prompt: "Write a haiku about programming.",
			Config: &ai.GenerateConfig{
				Temperature:     f32(0.7),
				TopP:            f32(0.95),
				TopK:            f32(40),
				MaxOutputTokens: 1024,
			},
		},
	}
}

func f32(v float32) *float32 { return &v }

// Runner executes probes sequentially and writes human-readable output.
type Runner struct {
	Gen   ai.TextGenerator
	Model string
	Out   io.Writer
	// Now stamps the banners; tests pin it. Nil means time.Now.
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run executes a single probe. A remote error and an empty response land in
// the same failure bucket: both produce a false result and a printed
// diagnostic, and neither stops the rest of the suite.
func (r *Runner) Run(ctx context.Context, p Probe) Result {
	fmt.Fprintf(r.Out, "\n%s\n", separator('='))
	fmt.Fprintf(r.Out, "Testing %s\n", p.Label)
	fmt.Fprintln(r.Out, separator('='))
	fmt.Fprintf(r.Out, "Model: %s\n", r.Model)
	fmt.Fprintf(r.Out, "Time: %s\n", r.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.Out, "%s\n\n", separator('='))
	fmt.Fprintf(r.Out, "Prompt: %s\n\n", p.Prompt)
	fmt.Fprintln(r.Out, "Sending request to Gemini API...")

	text, usage, err := r.Gen.GenerateText(ctx, p.Prompt, p.Config)
	if err != nil {
		fmt.Fprintf(r.Out, "❌ ERROR: %s\n", err)
		fmt.Fprintf(r.Out, "Error Type: %T\n", err)
		return Result{Label: p.Label}
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(r.Out, "❌ FAILED: Empty response received")
		return Result{Label: p.Label, Usage: usage}
	}

	fmt.Fprintf(r.Out, "✅ SUCCESS!\n\n")
	fmt.Fprintln(r.Out, "Response:")
	fmt.Fprintln(r.Out, separator('-'))
	fmt.Fprintln(r.Out, text)
	fmt.Fprintf(r.Out, "%s\n\n", separator('-'))
	return Result{Label: p.Label, Passed: true, Usage: usage}
}

// RunAll executes every probe in order. Failures never short-circuit.
func (r *Runner) RunAll(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		results = append(results, r.Run(ctx, p))
	}
	return results
}
