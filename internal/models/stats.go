package models

// NoSubject is reported as the favorite subject when there are no tasks.
const NoSubject = "none"

type Stats struct {
	CompletedTasks     int     `json:"completed_tasks"`
	TotalTasks         int     `json:"total_tasks"`
	CompletionRate     float64 `json:"completion_rate"`
	TotalStudyTime     int     `json:"total_study_time"`
	FavoriteSubject    string  `json:"favorite_subject"`
	MasteredCards      int     `json:"mastered_cards"`
	TotalCards         int     `json:"total_cards"`
	CardMasteryRate    float64 `json:"card_mastery_rate"`
	WeeklyDistribution [7]int  `json:"weekly_distribution"`
}
