package kvtext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// SectionOpen marks the start of a table header: [name:capacity]
	SectionOpen = "["

	// SectionClose marks the end of a table header
	SectionClose = "]"

	// CapacitySeparator separates the table name from its capacity in a header
	CapacitySeparator = ":"

	// ValueAssignment separates a quoted key from its quoted value
	ValueAssignment = "="

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote is the double-quote character around keys and values
	Quote = "\""

	// Backslash introduces an escape sequence
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence
	EscapedBackslash = "\\\\"

	// ============================================================================
	// Defaults and Sizes
	// ============================================================================

	// DefaultCapacity is used for headers without an explicit capacity.
	// It matches the bucket count of the engine's resource registries.
	DefaultCapacity = 100

	// ScannerInitialBufferSize is the initial buffer size for the line scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the line scanner
	ScannerMaxLineSize = 1024 * 1024 // 1MB
)
