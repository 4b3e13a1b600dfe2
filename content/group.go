package content

// Group is one partition produced by GroupBy.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy partitions items by key. Groups appear in order of first
// occurrence and items keep their input order within a group.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)

	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// Categorized is anything grouped on the skills page.
type Categorized interface {
	GetCategory() string
}

// GroupSkills groups skills by category, keeping the order in which the
// categories first appear.
func GroupSkills[T Categorized](skills []T) []Group[T] {
	return GroupBy(skills, T.GetCategory)
}
