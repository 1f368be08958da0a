package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/noah-isme/employee-availability-api/internal/scheduler"
	"github.com/noah-isme/employee-availability-api/internal/source"
)

const defaultURL = "https://ofc-test-01.tspb.su/test-task/"

var errUsage = errors.New("usage: availability-cli [flags] days|busy|free|available|find")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("availability-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		url     string
		date    string
		start   string
		end     string
		hours   int
		minutes int
		timeout time.Duration
	)
	fs.StringVar(&url, "url", defaultURL, "Schedule dataset URL")
	fs.StringVar(&date, "date", "", "Date (YYYY-MM-DD) for busy, free and available")
	fs.StringVar(&start, "start", "", "Interval start (HH:MM) for available")
	fs.StringVar(&end, "end", "", "Interval end (HH:MM) for available")
	fs.IntVar(&hours, "hours", 0, "Duration hours for find")
	fs.IntVar(&minutes, "minutes", 0, "Duration minutes for find")
	fs.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	s, err := scheduler.Open(ctx, source.NewHTTP(url, timeout))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var result interface{}
	switch fs.Arg(0) {
	case "days":
		result = s.Days()
	case "busy":
		result, err = s.BusySlots(date)
	case "free":
		result, err = s.FreeSlots(date)
	case "available":
		result, err = s.IsAvailable(date, start, end)
	case "find":
		match, found, findErr := s.FindSlotForDuration(hours, minutes)
		if findErr == nil && !found {
			fmt.Fprintln(stdout, scheduler.NoSlotMessage)
			return 0
		}
		result, err = match, findErr
	default:
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
