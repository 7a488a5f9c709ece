package models

type View string

const (
	ViewTasks      View = "tasks"
	ViewFlashCards View = "flashcards"
	ViewStats      View = "stats"
	ViewThemes     View = "themes"
)

// ViewState is the navigation state of one dashboard session.
type ViewState struct {
	Day    int
	View   View
	CardID string
}

func DefaultViewState() ViewState {
	return ViewState{Day: Monday, View: ViewTasks}
}
