package api

type ErrorCommand struct {
	Message string
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

type CaseCheckedCommand struct {
	Name    string
	Index   int
	Passed  bool
	Message string
}

type CheckCompletedCommand struct {
	Source string
	Total  int
	Passed int
	Failed int
}

type TestCasesReloadedCommand struct {
	Path  string
	Count int
}
