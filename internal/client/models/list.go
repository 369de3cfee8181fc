package models

// ClonePosts returns a copy of posts that never aliases the input. A nil input
// yields an empty, non-nil slice.
func ClonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}

// IndexOf returns the position of the post with the given id, or -1.
func IndexOf(posts []Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveByID returns a new slice without the post identified by id, keeping
// the relative order of the rest, and whether anything was removed.
func RemoveByID(posts []Post, id string) ([]Post, bool) {
	i := IndexOf(posts, id)
	if i < 0 {
		return posts, false
	}
	out := make([]Post, 0, len(posts)-1)
	out = append(out, posts[:i]...)
	out = append(out, posts[i+1:]...)
	return out, true
}

// MergeByID appends incoming posts to existing, skipping ids already present
// and ids listed in skip. Existing order is kept.
func MergeByID(existing, incoming []Post, skip map[string]struct{}) []Post {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]Post, 0, len(existing)+len(incoming))
	for _, p := range existing {
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	for _, p := range incoming {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		if _, ok := skip[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Without returns posts minus any id listed in skip.
func Without(posts []Post, skip map[string]struct{}) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := skip[p.ID]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
