package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/postkeeper/internal/client/models"
	"github.com/dmitrijs2005/postkeeper/internal/common"
)

// List renders the current list, loading the first page if nothing has been
// loaded yet.
func (a *App) List(ctx context.Context) error {
	if a.list.Refresh() {
		a.await(ctx, func(s models.State) bool { return !s.Paging })
	}
	renderState(a.out, a.list.Snapshot())
	return nil
}

// Search sets the query and renders its results once they arrive.
func (a *App) Search(ctx context.Context, query string) error {
	a.list.SetQuery(query)
	s := a.await(ctx, func(s models.State) bool { return s.Query == query && !s.Searching })
	if s.Query != query || s.Searching {
		return errTimeout
	}
	renderState(a.out, s)
	return nil
}

// Clear leaves search mode and shows the feed again.
func (a *App) Clear(ctx context.Context) error {
	a.list.SetQuery("")
	s := a.await(ctx, func(s models.State) bool { return s.Query == "" })
	renderState(a.out, s)
	return nil
}

// More loads the next page of the feed.
func (a *App) More(ctx context.Context) error {
	s := a.list.Snapshot()
	if !a.list.LoadMore() {
		switch {
		case s.Query != "":
			fmt.Fprintln(a.out, "Paging is not available while searching, use 'clear' first.")
		case s.Paging:
			fmt.Fprintln(a.out, "A page is already loading.")
		default:
			fmt.Fprintln(a.out, "No more posts.")
		}
		return nil
	}

	s = a.await(ctx, func(s models.State) bool { return !s.Paging })
	if s.Paging {
		return errTimeout
	}
	renderState(a.out, s)
	return nil
}

// Delete removes a displayed post after the server confirms it.
func (a *App) Delete(ctx context.Context, id string) error {
	before := a.list.Snapshot().Err
	if !a.list.Delete(id) {
		fmt.Fprintf(a.out, "Post %s is not in the list (or is already being deleted).\n", id)
		return nil
	}

	s := a.await(ctx, func(s models.State) bool {
		return models.IndexOf(s.Items, id) < 0 || (s.Err != nil && s.Err != before)
	})
	if models.IndexOf(s.Items, id) >= 0 {
		if s.Err != nil && s.Err != before {
			return s.Err
		}
		return errTimeout
	}
	fmt.Fprintf(a.out, "Post %s deleted.\n", id)
	return nil
}

// Profile prompts for the profile fields and saves them.
func (a *App) Profile(ctx context.Context) error {
	var p models.Profile
	var err error

	if p.DisplayName, err = GetSimpleText(a.reader, "Display name (empty to skip)", a.out); err != nil {
		return err
	}
	if p.Email, err = GetSimpleText(a.reader, "Email (empty to skip)", a.out); err != nil {
		return err
	}
	if p.Bio, err = GetMultiline(a.reader, fmt.Sprintf("Bio (max %d characters, empty to skip)", common.MaxBioLength), a.out); err != nil {
		return err
	}

	if err := a.profileService.Update(ctx, p); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// Login stores a bearer token and loads the feed.
func (a *App) Login(ctx context.Context) error {
	token, err := GetSecret(a.reader, "Paste access token", a.out)
	if err != nil {
		return err
	}
	if err := a.authService.Login(ctx, token); err != nil {
		return err
	}
	a.list.Reset()
	fmt.Fprintln(a.out, "Token saved.")
	return a.List(ctx)
}

// Logout forgets the stored token and everything loaded with it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.list.Reset()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Stats prints request counts and latency per remote operation.
func (a *App) Stats(ctx context.Context) error {
	families, err := a.gatherer.Gather()
	if err != nil {
		return err
	}

	printed := false
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(a.out, "%s%s: %.0f\n", mf.GetName(), labels, m.GetCounter().GetValue())
				printed = true
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				avg := 0.0
				if h.GetSampleCount() > 0 {
					avg = h.GetSampleSum() / float64(h.GetSampleCount())
				}
				fmt.Fprintf(a.out, "%s%s: count=%d avg=%.3fs\n", mf.GetName(), labels, h.GetSampleCount(), avg)
				printed = true
			}
		}
	}
	if !printed {
		fmt.Fprintln(a.out, "No requests yet.")
	}
	return nil
}
