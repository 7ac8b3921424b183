package wordlist

// DefaultNegative is used whenever the negative list is empty.
var DefaultNegative = []string{
	"스트레스",
	"불안",
	"stress",
	"deadline",
	"overtime",
	"burnout",
	"worry",
	"regret",
}

// DefaultPositive is used whenever the positive list is empty.
var DefaultPositive = []string{
	"행복해",
	"잘했어",
	"well done",
	"calm",
	"proud",
	"relax",
	"joy",
	"you got this",
}

// Intner draws a uniform index in [0, n).
type Intner interface {
	Intn(n int) int
}

// List is an ordered, mutable sequence of labels with a fallback set.
type List struct {
	items    []string
	defaults []string
}

// NewList returns a list seeded with the given labels. Blank labels are dropped.
func NewList(seed, defaults []string) *List {
	l := &List{defaults: append([]string(nil), defaults...)}
	for _, w := range seed {
		l.Add(w)
	}
	return l
}

// Add appends a label. Duplicates are allowed; blank labels are ignored.
func (l *List) Add(word string) bool {
	word, ok := Clean(word)
	if !ok {
		return false
	}
	l.items = append(l.items, word)
	return true
}

// Remove deletes the label at index. Out-of-range indexes are ignored.
func (l *List) Remove(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

// Items returns a copy of the user labels, possibly empty.
func (l *List) Items() []string {
	return append([]string(nil), l.items...)
}

// Len returns the number of user labels.
func (l *List) Len() int {
	return len(l.items)
}

// Effective returns the user labels, or the defaults when there are none.
func (l *List) Effective() []string {
	if len(l.items) == 0 {
		return append([]string(nil), l.defaults...)
	}
	return l.Items()
}

// Pick draws a label uniformly from the effective labels.
func (l *List) Pick(rnd Intner) string {
	pool := l.items
	if len(pool) == 0 {
		pool = l.defaults
	}
	if len(pool) == 0 {
		return "?"
	}
	return pool[rnd.Intn(len(pool))]
}

// Registry holds the negative (target) and positive (reward) lists.
type Registry struct {
	Negative *List
	Positive *List
}

// NewRegistry builds a registry from seed lists with the default fallbacks.
func NewRegistry(negative, positive []string) *Registry {
	return &Registry{
		Negative: NewList(negative, DefaultNegative),
		Positive: NewList(positive, DefaultPositive),
	}
}
