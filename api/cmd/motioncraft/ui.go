package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"motioncraft/api/internal/analysis"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	titleColor  = color.New(color.FgMagenta, color.Bold)
)

// startSpinner крутится, пока идут удалённые вызовы; возвращает stop.
func startSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}

// scoreColor: 8+ зелёный, 5–7 жёлтый, ниже красный.
func scoreColor(v int) *color.Color {
	switch {
	case v >= 8:
		return color.New(color.FgGreen, color.Bold)
	case v >= 5:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printTitle(w io.Writer, name string) {
	if name = strings.TrimSpace(name); name != "" {
		titleColor.Fprintln(w, name)
		fmt.Fprintln(w)
	}
}

func printScores(w io.Writer, scores []analysis.Score) {
	headerColor.Fprintln(w, "Scores")
	for _, s := range scores {
		fmt.Fprintf(w, "  %-20s %s\n", s.Label, scoreColor(s.Value).Sprintf("%2d/10", s.Value))
	}
	fmt.Fprintln(w)
}

func printList(w io.Writer, title string, items []string) {
	headerColor.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintln(w, "  •", it)
	}
	fmt.Fprintln(w)
}

func printSection(w io.Writer, title, body string) {
	headerColor.Fprintln(w, title)
	fmt.Fprintln(w, "  "+body)
	fmt.Fprintln(w)
}
