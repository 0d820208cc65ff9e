package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher
	IconEye       = "" // eye
	IconFont      = "" // font
	IconZoom      = "" // search
	IconSpacing   = "" // text width
	IconAlign     = "" // text height
	IconContrast  = "" // adjust
	IconDatabase  = "" // database
)
