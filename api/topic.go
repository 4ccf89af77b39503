package api

type Topic string

const (
	CaseChecked          Topic = "event-case-checked"
	CheckCompleted       Topic = "event-check-completed"
	ProcessStatusUpdated Topic = "event-process-status-updated"
	TestCasesReloaded    Topic = "event-test-cases-reloaded"
	ShowError            Topic = "event-show-error"
)
