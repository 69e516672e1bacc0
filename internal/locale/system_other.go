//go:build !windows

package locale

// System returns the platform locale database. Outside Windows this is the
// embedded tag table.
func System() (Database, error) {
	return DefaultTable()
}
