package repository

// FetchOptions holds the parameters for fetching reminders.
type FetchOptions struct {
	ListIDs   []string // restrict to these lists; empty means all lists
	Completed bool     // true fetches completed reminders only, false incomplete only
}

// Matches reports whether a reminder in listID with the given completion state
// is selected by opt.
func (opt FetchOptions) Matches(listID string, completed bool) bool {
	return completed == opt.Completed && opt.IncludesList(listID)
}

// IncludesList reports whether listID is within the requested lists.
func (opt FetchOptions) IncludesList(listID string) bool {
	if len(opt.ListIDs) == 0 {
		return true
	}
	for _, id := range opt.ListIDs {
		if id == listID {
			return true
		}
	}
	return false
}
