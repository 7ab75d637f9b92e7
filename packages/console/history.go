package console

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	// DefaultHistoryFile is the history file used when none is configured
	DefaultHistoryFile = "lunarica_history.txt"
	// DefaultHistorySize is the maximum number of lines kept
	DefaultHistorySize = 1000
)

// History is the list of submitted lines, oldest first.
type History struct {
	path    string
	max     int
	entries []string
}

// NewHistory returns an empty history persisted at path. An empty path
// keeps the history in memory only.
func NewHistory(path string, max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{path: path, max: max}
}

// LoadHistory reads the history file at path. A missing or unreadable file
// yields an empty history; the failure is logged.
func LoadHistory(path string, max int) *History {
	h := NewHistory(path, max)
	if path == "" {
		return h
	}

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("history: load %s: %v", path, err)
		}
		return h
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Printf("history: read %s: %v", path, err)
	}
	return h
}

// Add appends line unless it is blank or repeats the previous entry.
func (h *History) Add(line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at i, counting from the oldest.
func (h *History) At(i int) string {
	return h.entries[i]
}

func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Save writes the history file. It is a no-op for an in-memory history.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}

	f, err := os.Create(h.path)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, line := range h.entries {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return f.Close()
}
