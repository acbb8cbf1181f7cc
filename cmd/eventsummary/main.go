package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

type eventRecord struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
	Error     string    `json:"error,omitempty"`
}

type eventCount struct {
	Event  string    `json:"event"`
	Count  int       `json:"count"`
	Errors int       `json:"errors"`
	First  time.Time `json:"first"`
	Last   time.Time `json:"last"`
}

type summary struct {
	Source   string       `json:"source"`
	Sessions int          `json:"sessions"`
	Skipped  int          `json:"skipped_lines"`
	Events   []eventCount `json:"events"`
}

func main() {
	var inputPath string
	var asJSON bool
	flag.StringVar(&inputPath, "in", defaultEventsPath(), "event log path")
	flag.BoolVar(&asJSON, "json", false, "print the summary as JSON")
	flag.Parse()

	if strings.TrimSpace(inputPath) == "" {
		exit(errors.New("missing --in path"))
	}

	f, err := os.Open(inputPath)
	if err != nil {
		exit(fmt.Errorf("open events: %w", err))
	}
	defer f.Close()

	sum, err := summarize(f)
	if err != nil {
		exit(fmt.Errorf("parse events: %w", err))
	}
	sum.Source = inputPath

	if asJSON {
		encoded, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			exit(fmt.Errorf("encode summary: %w", err))
		}
		fmt.Println(string(encoded))
		return
	}
	writeTable(os.Stdout, sum, time.Now())
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "eventsummary: %v\n", err)
	os.Exit(1)
}

func defaultEventsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sheetfm", "events.jsonl")
}

// summarize counts events by name. Lines that are not JSON objects with an
// event name are counted as skipped.
func summarize(r io.Reader) (summary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	counts := make(map[string]*eventCount)
	sessions := make(map[string]struct{})
	var sum summary
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec eventRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil || rec.Event == "" {
			sum.Skipped++
			continue
		}
		if rec.SessionID != "" {
			sessions[rec.SessionID] = struct{}{}
		}
		c, ok := counts[rec.Event]
		if !ok {
			c = &eventCount{Event: rec.Event, First: rec.Timestamp, Last: rec.Timestamp}
			counts[rec.Event] = c
		}
		c.Count++
		if rec.Error != "" {
			c.Errors++
		}
		if rec.Timestamp.Before(c.First) {
			c.First = rec.Timestamp
		}
		if rec.Timestamp.After(c.Last) {
			c.Last = rec.Timestamp
		}
	}
	if err := scanner.Err(); err != nil {
		return summary{}, err
	}

	sum.Sessions = len(sessions)
	sum.Events = make([]eventCount, 0, len(counts))
	for _, c := range counts {
		sum.Events = append(sum.Events, *c)
	}
	sort.Slice(sum.Events, func(i, j int) bool {
		if sum.Events[i].Count != sum.Events[j].Count {
			return sum.Events[i].Count > sum.Events[j].Count
		}
		return sum.Events[i].Event < sum.Events[j].Event
	})
	return sum, nil
}

func writeTable(w io.Writer, sum summary, now time.Time) {
	fmt.Fprintf(w, "%s: %d sessions, %d skipped lines\n", sum.Source, sum.Sessions, sum.Skipped)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT\tCOUNT\tERRORS\tFIRST\tLAST")
	for _, c := range sum.Events {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", c.Event, humanize.Comma(int64(c.Count)), c.Errors,
			humanize.RelTime(c.First, now, "ago", "from now"), humanize.RelTime(c.Last, now, "ago", "from now"))
	}
	tw.Flush()
}
