package ftlmove

import (
	"fmt"
	"io"
)

//go:generate mockgen -source=$GOFILE -package mock_ftlmove -destination=test/mock/$GOFILE

// Reporter receives progress events from a run, in order, on the calling goroutine.
type Reporter interface {
	OnNoKeys()
	OnSkip(dir string, err error)
	OnProcess(sourcePath string)
	OnRename(oldKey string, newKey string)
	OnMoved(count int, destinationPath string)
	OnNothingMoved(sourcePath string)
	OnSourceUpdated(sourcePath string)
}

// TextReporter writes human-readable progress lines.
type TextReporter struct {
	w io.Writer
	// DryRun words the lines as what would happen; set it to match Config.DryRun.
	DryRun bool
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) OnNoKeys() {
	fmt.Fprintln(r.w, "No keys to move. Exiting.")
}

func (r *TextReporter) OnSkip(dir string, err error) {
	fmt.Fprintf(r.w, "Skipping %s: %v.\n", dir, err)
}

func (r *TextReporter) OnProcess(sourcePath string) {
	fmt.Fprintf(r.w, "\nProcessing '%s'...\n", sourcePath)
}

func (r *TextReporter) OnRename(oldKey string, newKey string) {
	fmt.Fprintf(r.w, "Renamed '%s' to '%s'\n", oldKey, newKey)
}

func (r *TextReporter) OnMoved(count int, destinationPath string) {
	if r.DryRun {
		fmt.Fprintf(r.w, "Would move %d keys to '%s'.\n", count, destinationPath)
		return
	}
	fmt.Fprintf(r.w, "Successfully moved %d keys to '%s'.\n", count, destinationPath)
}

func (r *TextReporter) OnNothingMoved(sourcePath string) {
	fmt.Fprintln(r.w, "No keys found to move in this file.")
}

func (r *TextReporter) OnSourceUpdated(sourcePath string) {
	if r.DryRun {
		fmt.Fprintln(r.w, "Would update the source file. Nothing written for this language.")
		return
	}
	fmt.Fprintln(r.w, "Updated the source file. Operation complete for this language.")
}

type nopReporter struct{}

func (nopReporter) OnNoKeys()               {}
func (nopReporter) OnSkip(string, error)    {}
func (nopReporter) OnProcess(string)        {}
func (nopReporter) OnRename(string, string) {}
func (nopReporter) OnMoved(int, string)     {}
func (nopReporter) OnNothingMoved(string)   {}
func (nopReporter) OnSourceUpdated(string)  {}
