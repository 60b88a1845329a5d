// ABOUTME: Version constants
// ABOUTME: Product identification reported by the CLI and batch logs
package version

const (
	// Version is the soundgen release
	Version = "0.3.0"

	// Product is the tool name
	Product = "soundgen"

	// Manufacturer is the project that ships the tool
	Manufacturer = "Shadow Worker"
)

// String returns "product version"
func String() string {
	return Product + " " + Version
}
