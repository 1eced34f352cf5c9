package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"eventscore/internal/manage"
)

// criteriactl drives the criteria manager against a running server:
//
//	criteriactl -addr http://localhost:8081 -email staff@x.com -password pw -event 3 list
//	criteriactl ... -event 3 add "Stage Presence" 25
//	criteriactl ... update 7 "Stage Presence" 30
//	criteriactl ... del 7
func main() {
	addr := flag.String("addr", "http://localhost:8081", "server base URL")
	email := flag.String("email", "", "login email (staff or admin)")
	password := flag.String("password", "", "login password")
	eventID := flag.Int64("event", 0, "event id")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fail("usage: criteriactl [flags] list|add|update|del ...")
	}

	ctx := context.Background()
	client := manage.NewClient(*addr, nil)

	if *email != "" {
		if err := client.Login(ctx, *email, *password); err != nil {
			fail("login: %v", err)
		}
	}

	mgr := manage.NewManager(client, consoleNotifier{})

	switch args[0] {
	case "list":
		mgr.Load(ctx, *eventID)
		if mgr.State() == manage.StateError {
			fail("load: %s", mgr.ErrMessage())
		}
		if mgr.Empty() {
			fmt.Println("No criteria available for this event.")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMAX SCORE")
		for _, c := range mgr.List() {
			fmt.Fprintf(w, "%d\t%s\t%d\n", c.ID, c.Name, c.MaxScore)
		}
		w.Flush()

	case "add":
		if len(args) != 3 {
			fail("usage: add <name> <max_score>")
		}
		mgr.Load(ctx, *eventID)
		mgr.OpenCreate()
		mgr.SetName(args[1])
		mgr.SetMaxScore(args[2])
		mgr.Submit(ctx)

	case "update":
		if len(args) != 4 {
			fail("usage: update <id> <name> <max_score>")
		}
		id := mustID(args[1])
		mgr.Load(ctx, *eventID)
		mgr.OpenEdit(manage.Criteria{ID: id, Name: args[2]})
		mgr.SetName(args[2])
		mgr.SetMaxScore(args[3])
		mgr.Submit(ctx)

	case "del":
		if len(args) != 2 {
			fail("usage: del <id>")
		}
		mgr.Load(ctx, *eventID)
		mgr.Delete(ctx, mustID(args[1]))

	default:
		fail("unknown command %q", args[0])
	}
}

type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println("ok:", msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "error:", msg) }

func mustID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fail("bad id %q", raw)
	}
	return id
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
