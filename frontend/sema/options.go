package sema

// Options tune type deduction. The zero value is the default behaviour.
type Options struct {
	// BlockScopes gives every nested block its own variable scope. When false
	// a method body is a single scope.
	BlockScopes bool
}
