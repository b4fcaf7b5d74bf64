package blog

// Listing is the outcome of the board pipeline for one view state.
type Listing struct {
	State    ViewState
	Filtered []Post
	Page     Page
}

// BuildListing runs filter and pagination over an already sorted collection.
func BuildListing(sorted []Post, state ViewState) Listing {
	if state.Filter == "" {
		state.Filter = FilterAll
	}
	if state.Page < 1 {
		state.Page = 1
	}
	filtered := Filter(sorted, state.Filter)
	return Listing{
		State:    state,
		Filtered: filtered,
		Page:     Paginate(filtered, state.Page, PostsPerPage),
	}
}
