package models

// ReleaseTag represents an annotated tag created for a release
type ReleaseTag struct {
	// Name is the full tag name (e.g., "v1.2.3")
	Name string
	// Target is the hash of the commit the tag points at
	Target string
	// Message is the tag annotation message
	Message string
}
