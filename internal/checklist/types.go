package checklist

// Checkbox represents a single checkbox in markdown
type Checkbox struct {
	Line    int    // Index among the checkboxes found
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
}

// Stats represents checklist progress
type Stats struct {
	Total     int     // Total items
	Completed int     // Checked items
	Pending   int     // Unchecked items
	Progress  float64 // Completion percentage (0-100)
}
