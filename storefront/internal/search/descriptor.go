package search

import (
	"net/url"
	"strconv"
	"strings"
)

const DefaultSortOption = "bestMatch"

// Descriptor is the serializable record of the current search filters, sort
// and page. Transitions return a new value; a Descriptor is never mutated in
// place.
type Descriptor struct {
	SearchQuery      string   `json:"searchQuery"`
	Page             int      `json:"page"`
	SelectedCuisines []string `json:"selectedCuisines"`
	SortOption       string   `json:"sortOption"`
}

func NewDescriptor() Descriptor {
	return Descriptor{
		Page:             1,
		SelectedCuisines: []string{},
		SortOption:       DefaultSortOption,
	}
}

func (d Descriptor) WithSortOption(option string) Descriptor {
	d.SortOption = option
	d.Page = 1
	return d
}

func (d Descriptor) WithSelectedCuisines(cuisines []string) Descriptor {
	d.SelectedCuisines = append([]string{}, cuisines...)
	d.Page = 1
	return d
}

func (d Descriptor) WithSearchQuery(query string) Descriptor {
	d.SearchQuery = query
	d.Page = 1
	return d
}

// Reset clears the free-text query only; cuisines and sort survive.
func (d Descriptor) Reset() Descriptor {
	return d.WithSearchQuery("")
}

// WithPage replaces the page and nothing else. Pages below 1 are clamped.
func (d Descriptor) WithPage(page int) Descriptor {
	if page < 1 {
		page = 1
	}
	d.Page = page
	return d
}

// Query is the canonical query-parameter form sent to the backend.
func (d Descriptor) Query() url.Values {
	params := url.Values{}
	params.Set("searchQuery", d.SearchQuery)
	params.Set("page", strconv.Itoa(d.Page))
	params.Set("selectedCuisines", strings.Join(d.SelectedCuisines, ","))
	params.Set("sortOption", d.SortOption)
	return params
}

func (d Descriptor) Equal(other Descriptor) bool {
	if d.SearchQuery != other.SearchQuery || d.Page != other.Page || d.SortOption != other.SortOption {
		return false
	}
	if len(d.SelectedCuisines) != len(other.SelectedCuisines) {
		return false
	}
	for i := range d.SelectedCuisines {
		if d.SelectedCuisines[i] != other.SelectedCuisines[i] {
			return false
		}
	}
	return true
}

// ParseDescriptor builds a descriptor from query parameters as produced by
// Query. Missing or malformed values fall back to the defaults.
func ParseDescriptor(values url.Values) Descriptor {
	d := NewDescriptor()
	d.SearchQuery = values.Get("searchQuery")
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		d.Page = page
	}
	d.SelectedCuisines = SplitCuisines(values.Get("selectedCuisines"))
	if sort := values.Get("sortOption"); sort != "" {
		d.SortOption = sort
	}
	return d
}

// SplitCuisines parses the comma-joined cuisine list, dropping blanks.
func SplitCuisines(raw string) []string {
	cuisines := []string{}
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cuisines = append(cuisines, c)
		}
	}
	return cuisines
}
