package view

// Static copy for the read-only parts of each panel.
const (
	HeaderTitle    = "UNIVERSITY OF THE ASSUMPTION"
	HeaderSubtitle = "College of Information Technology"
	HeaderAddress  = "Del Pilar, City of San Fdo. Pampanga"

	SidebarTitle = "IT Elective I"

	DashboardTitle    = "Activity Management Dashboard"
	DashboardSubtitle = "School Year 2024-2025"
	TasksTitle        = "Task List"
	EmptyTable        = "No records found in the database."

	FormAddTitle  = "Add New Activity"
	FormEditTitle = "Update Existing Record"

	SettingsTitle      = "System Configuration"
	VisualPrefsTitle   = "Visual Preferences"
	DangerZoneTitle    = "Danger Zone"
	DangerZoneText     = "Delete all records from the database permanently."
	ResetButton        = "Reset System Database"
	SwitchToDarkLabel  = "Switch to Dark Mode"
	SwitchToLightLabel = "Switch to Light Mode"

	Footer = "Final Project in IT Elective I | System Generated Report"
)

// ObjectivesMarkdown is the Objectives panel, rendered with glamour.
const ObjectivesMarkdown = `# System Objectives

## 1. Centralized Management

To provide a school-wide platform for tracking activities, ensuring accountability for the "Person in Charge."

## 2. Record Keeping

To maintain a digital log of dates and evaluations for future accreditation and reporting purposes.
`

// ThemeToggleLabel is the settings button text for the current theme.
func ThemeToggleLabel(dark bool) string {
	if dark {
		return SwitchToLightLabel
	}
	return SwitchToDarkLabel
}
