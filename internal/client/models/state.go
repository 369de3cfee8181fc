package models

// View is what the presentation layer should render for a State.
type View int

const (
	// ViewNotLoaded: nothing has been fetched yet.
	ViewNotLoaded View = iota
	// ViewLoading: a request is in flight and there is nothing to show yet.
	ViewLoading
	// ViewError: the last request failed and there is nothing to show.
	ViewError
	// ViewEmpty: a successful fetch returned zero posts ("no results").
	ViewEmpty
	// ViewList: there are posts to show.
	ViewList
)

func (v View) String() string {
	switch v {
	case ViewNotLoaded:
		return "not_loaded"
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	case ViewList:
		return "list"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the post list as seen by the
// presentation layer.
type State struct {
	// Items is the ordered list to render: relevance order for search
	// results, newest first for the feed.
	Items []Post
	// More reports whether the feed has further pages.
	More bool
	// Searching is true while a search request for Query is in flight.
	Searching bool
	// Paging is true while a feed page request is in flight.
	Paging bool
	// Loaded is true once any fetch has completed successfully, or the
	// list was created from an initial page.
	Loaded bool
	// Query is the current debounced search query; empty means feed mode.
	Query string
	// Err is the last failure, kept until the next successful request.
	Err error
}

// View picks the presentation branch. A list that is already visible stays
// visible while a new request is in flight.
func (s State) View() View {
	switch {
	case len(s.Items) > 0:
		return ViewList
	case s.Searching || s.Paging:
		return ViewLoading
	case s.Err != nil:
		return ViewError
	case !s.Loaded:
		return ViewNotLoaded
	default:
		return ViewEmpty
	}
}

// CanLoadMore reports whether the "load more" control is enabled.
func (s State) CanLoadMore() bool {
	return s.Query == "" && s.More && !s.Paging
}
