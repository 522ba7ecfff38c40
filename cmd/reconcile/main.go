// reconcile scans the store for goals and sessions whose client no longer
// exists (the residue of an interrupted cascade delete) and removes them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/openslp/trialtrack-backend/internal/app"
)

func main() {
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", false, "report orphans without removing them")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	report, err := application.Services.Reconcile.Run(context.Background(), dryRun)
	if err != nil {
		fmt.Printf("reconcile: %v\n", err)
		os.Exit(1)
	}

	verb := "removed"
	if dryRun {
		verb = "found"
	}
	fmt.Printf("%s %d orphaned goals, %d orphaned sessions\n", verb, report.OrphanedGoals, report.OrphanedSessions)
}
