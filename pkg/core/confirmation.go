package core

// ConfirmationPolicy gates transfers before they are carried out. The core
// calls exactly one of these methods at each decision point described in
// spec section 4.4's definition of transfer. A false return causes the
// transfer to be silently skipped for that path in that pair; this is not an
// error (spec section 7's UserDecline), and a subsequent run will re-propose
// it.
type ConfirmationPolicy interface {
	// ConfirmCopy asks whether a new file should be copied from replica
	// "from" to replica "to" at path, where "to" has no record of the path
	// or only a tombstone.
	ConfirmCopy(from, to, path string) bool
	// ConfirmReplace asks whether a file should be copied from replica
	// "from" onto replica "to" at path, replacing a live file there.
	ConfirmReplace(from, to, path string) bool
	// ConfirmDelete asks whether the live file at path on replica "to"
	// should be removed because replica "from" has deleted it.
	ConfirmDelete(from, to, path string) bool
}

// AutomaticConfirmationPolicy is the default ConfirmationPolicy: every query
// returns true, so synchronization proceeds without user interaction.
type AutomaticConfirmationPolicy struct{}

// ConfirmCopy implements ConfirmationPolicy.
func (AutomaticConfirmationPolicy) ConfirmCopy(from, to, path string) bool { return true }

// ConfirmReplace implements ConfirmationPolicy.
func (AutomaticConfirmationPolicy) ConfirmReplace(from, to, path string) bool { return true }

// ConfirmDelete implements ConfirmationPolicy.
func (AutomaticConfirmationPolicy) ConfirmDelete(from, to, path string) bool { return true }
