package plan

// Kind classifies the outcome for one relative path when comparing the
// source and destination trees.
type Kind string

const (
	Same      Kind = "same"
	Create    Kind = "create"
	Overwrite Kind = "overwrite"
)

// Change is one classified file. Source and Destination are absolute
// paths; Path is the shared relative path. TypeMismatch flags an
// overwrite where one side is a regular file and the other a symlink, so
// previews can warn instead of silently coercing the type. Changes are
// never mutated after classification; acceptance is tracked by the caller.
type Change struct {
	Path         string
	Kind         Kind
	Source       string
	Destination  string
	TypeMismatch bool
}

// GroupPlan holds the classified changes of one group.
type GroupPlan struct {
	Group   string
	Changes []Change
}

// HasChanges reports whether any change in the group is not Same.
func (g *GroupPlan) HasChanges() bool {
	for _, c := range g.Changes {
		if c.Kind != Same {
			return true
		}
	}
	return false
}

// CountByKind returns the number of changes of the given kind.
func (g *GroupPlan) CountByKind(kind Kind) int {
	count := 0
	for _, c := range g.Changes {
		if c.Kind == kind {
			count++
		}
	}
	return count
}

// Plan aggregates the group plans of one sync invocation.
type Plan struct {
	Groups []GroupPlan
}

// New creates an empty plan.
func New() *Plan {
	return &Plan{}
}

// AddGroup appends one group's classified changes.
func (p *Plan) AddGroup(group string, changes []Change) {
	p.Groups = append(p.Groups, GroupPlan{Group: group, Changes: changes})
}

// HasChanges reports whether any group has a non-Same change.
func (p *Plan) HasChanges() bool {
	for i := range p.Groups {
		if p.Groups[i].HasChanges() {
			return true
		}
	}
	return false
}

// TotalCountByKind sums CountByKind across groups.
func (p *Plan) TotalCountByKind(kind Kind) int {
	total := 0
	for i := range p.Groups {
		total += p.Groups[i].CountByKind(kind)
	}
	return total
}

// IsEmpty reports whether no group contributed any entry at all.
func (p *Plan) IsEmpty() bool {
	for i := range p.Groups {
		if len(p.Groups[i].Changes) > 0 {
			return false
		}
	}
	return true
}
