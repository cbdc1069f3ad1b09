package tui

// Color constants for the MyGymLog TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3B4252" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (row values, titles)
	ColorSecondaryText = "#ADB5BD" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#868E96" // Input placeholders
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Blue theme)
	ColorAccentMain   = "#1971C2" // Resolved exercise names, titles, chart line
	ColorAccentBright = "#4DABF7" // Selection, highlights, badges

	// State Colors
	ColorError   = "#FF6B6B" // Delete affordance
	ColorSuccess = "#22C55E" // Completed sets
	ColorWarning = "#F59E0B" // Warnings
)
