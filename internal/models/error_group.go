package models

import "sort"

// ErrorGroups maps a classification label to the set of distinct URLs that
// failed with it. The zero value is ready to use; it is not safe for
// concurrent use.
type ErrorGroups struct {
	groups map[string]map[string]struct{}
}

// NewErrorGroups returns an empty ErrorGroups.
func NewErrorGroups() *ErrorGroups {
	return &ErrorGroups{groups: make(map[string]map[string]struct{})}
}

// Add records url under label, creating the group on first use.
// It reports whether url was new for that label.
func (eg *ErrorGroups) Add(label, url string) bool {
	if eg.groups == nil {
		eg.groups = make(map[string]map[string]struct{})
	}

	urls, ok := eg.groups[label]
	if !ok {
		urls = make(map[string]struct{})
		eg.groups[label] = urls
	}

	if _, seen := urls[url]; seen {
		return false
	}
	urls[url] = struct{}{}
	return true
}

// Len returns the number of labels.
func (eg *ErrorGroups) Len() int {
	return len(eg.groups)
}

// TotalURLs returns the number of distinct (label, URL) pairs.
func (eg *ErrorGroups) TotalURLs() int {
	total := 0
	for _, urls := range eg.groups {
		total += len(urls)
	}
	return total
}

// Labels returns all labels in lexical order.
func (eg *ErrorGroups) Labels() []string {
	labels := make([]string, 0, len(eg.groups))
	for label := range eg.groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// URLs returns the URLs recorded under label in lexical order.
func (eg *ErrorGroups) URLs(label string) []string {
	set := eg.groups[label]
	urls := make([]string, 0, len(set))
	for url := range set {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}
