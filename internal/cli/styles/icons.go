package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconDoctor  = "" // stethoscope
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconWrench  = "" // wrench

	IconFolder   = "" // folder
	IconFile     = "" // file
	IconConfig   = "" // config
	IconBug      = "" // bug
	IconTerminal = "" // terminal
	IconServer   = "" // server
)
