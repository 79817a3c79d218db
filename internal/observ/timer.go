// Package observ times the phases of one chant run.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed step of the pipeline (parse, width, layout...).
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects phases in the order they were started. Not safe for concurrent use;
// every run owns its own Timer.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 4), now: time.Now}
}

// Begin starts a phase and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: t.now()})
	return len(t.phases) - 1
}

// End closes the phase idx; unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = t.now().Sub(p.Start)
	p.Note = note
}

// Time runs fn as the phase name.
func (t *Timer) Time(name string, fn func() string) {
	idx := t.Begin(name)
	t.End(idx, fn())
}

// PhaseReport is the serialisable form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name" yaml:"name"`
	DurationMS float64 `json:"duration_ms" yaml:"duration_ms"`
	Note       string  `json:"note,omitempty" yaml:"note,omitempty"`
}

type Report struct {
	TotalMS float64       `json:"total_ms" yaml:"total_ms"`
	Phases  []PhaseReport `json:"phases" yaml:"phases"`
}

// Report сворачивает фазы в миллисекунды.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: millis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = millis(total)
	return report
}

// Summary renders the report as an aligned table.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-10s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %-10s %7.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
