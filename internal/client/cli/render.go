package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/postkeeper/internal/client/client"
	"github.com/dmitrijs2005/postkeeper/internal/client/models"
)

const dateLayout = "2006-01-02 15:04"

// renderState writes the list view for s.
func renderState(w io.Writer, s models.State) {
	switch s.View() {
	case models.ViewNotLoaded:
		fmt.Fprintln(w, "Nothing loaded yet. Use 'login' to store a token, then 'list'.")
		return
	case models.ViewLoading:
		fmt.Fprintln(w, "Loading...")
		return
	case models.ViewError:
		fmt.Fprintln(w, "Error:", describeError(s.Err))
		return
	case models.ViewEmpty:
		if s.Query != "" {
			fmt.Fprintf(w, "No posts match %q.\n", s.Query)
		} else {
			fmt.Fprintln(w, "You have no posts yet.")
		}
		return
	}

	if s.Query != "" {
		fmt.Fprintf(w, "Results for %q:\n", s.Query)
	} else {
		fmt.Fprintln(w, "Your posts:")
	}
	for i, p := range s.Items {
		fmt.Fprintf(w, "%3d. %s\n", i+1, postLine(p))
	}

	switch {
	case s.Searching:
		fmt.Fprintln(w, "(searching...)")
	case s.Paging:
		fmt.Fprintln(w, "(loading more...)")
	case s.CanLoadMore():
		fmt.Fprintln(w, "-- type 'more' to load more --")
	}
	if s.Err != nil {
		fmt.Fprintln(w, "Last action failed:", describeError(s.Err))
	}
}

func postLine(p models.Post) string {
	title := p.Title
	if title == "" {
		title = "(untitled)"
	}
	line := fmt.Sprintf("[%s] %s", p.ID, title)
	if !p.CreatedAt.IsZero() {
		line += "  " + p.CreatedAt.Local().Format(dateLayout)
	}
	if p.HasFiles() {
		line += fmt.Sprintf("  +%d file(s)", len(p.Files))
	}
	return line
}

// describeError turns a client error into a short user-facing message.
func describeError(err error) string {
	var se *client.StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized, use 'login' to store a valid token"
	case errors.As(err, &se):
		return fmt.Sprintf("server error %d: %s", se.Code, se.Message)
	case client.IsUnavailable(err):
		return "server unavailable, try again later"
	default:
		return err.Error()
	}
}
