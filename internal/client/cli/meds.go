package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// List prints the current local medication list and the derived
// progress. It does not hit the network; use refresh for that.
func (a *App) List(ctx context.Context) error {
	meds := a.medService.List()
	if len(meds) == 0 {
		fmt.Println("No medications.")
		return nil
	}

	for _, m := range meds {
		line := fmt.Sprintf("%3d  %-20s %s  %s", m.ID, m.Name, m.Time, m.Status)
		if m.Owner != "" {
			line = line + "  owner: " + m.Owner
		}
		fmt.Println(line)
	}

	p := a.medService.Progress()
	fmt.Printf("Progress: %d of %d taken (%d%%)\n", p.Taken, p.Total, p.Percent)
	return nil
}

// Refresh re-fetches the list from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.medService.Refresh(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return a.List(ctx)
}

// Add prompts for the new medication's fields. Administrators are also
// asked which patient the medication is for.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter medication name", os.Stdout)
	if err != nil {
		return err
	}
	timeOfDay, err := getSimpleText(a.reader, "Enter time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}

	var targetOwner string
	if a.isAdmin() {
		targetOwner, err = getSimpleText(a.reader, "Enter patient identity", os.Stdout)
		if err != nil {
			return err
		}
	}

	if err := a.medService.Add(ctx, name, timeOfDay, targetOwner); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// idArg resolves the record id from command arguments or an interactive
// prompt.
func (a *App) idArg(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		raw, err = getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Take marks a dose taken.
func (a *App) Take(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter medication id")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if err := a.medService.Take(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// Remove deletes a medication; the store asks for confirmation first.
func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter medication id to delete")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if err := a.medService.Remove(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// ResetAll returns every record to pending; the store asks for
// confirmation first.
func (a *App) ResetAll(ctx context.Context) error {
	if err := a.medService.ResetAll(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// Report sends the progress summary through the notification endpoint.
func (a *App) Report(ctx context.Context) error {
	p := a.medService.Progress()
	if err := a.notifyService.SendProgressReport(ctx, p); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Printf("Progress report sent")
	return nil
}
