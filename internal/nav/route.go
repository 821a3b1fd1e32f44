package nav

// Resolver maps locations to navigation items by exact destination match.
type Resolver struct {
	table *Table
}

// NewResolver returns a resolver over table.
func NewResolver(table *Table) Resolver {
	return Resolver{table: table}
}

// Resolve returns the id of the item whose destination equals path.
// Prefixes, trailing slashes and case differences do not match.
func (r Resolver) Resolve(path string) (string, bool) {
	if r.table == nil {
		return "", false
	}
	for _, item := range r.table.items {
		if item.Destination == path {
			return item.ID, true
		}
	}
	return "", false
}
