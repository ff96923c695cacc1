package ports

// Confirmer asks the user a yes/no question about a proposed correction.
type Confirmer interface {
	// Confirm shows the corrected command line and reports whether the user accepted it.
	Confirm(suggestion string) (bool, error)
}
