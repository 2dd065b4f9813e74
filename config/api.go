package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths (GraphQL is read-only, no auth)
	return []string{"/graphql", "/health"}
}
