package models

// AdminStats сводная статистика по всем пользователям сервиса.
type AdminStats struct {
	TotalUsers  int `json:"total_users"`  // Количество пользователей
	TotalHabits int `json:"total_habits"` // Количество привычек
	TotalTasks  int `json:"total_tasks"`  // Количество задач
	TotalXP     int `json:"total_xp"`     // Суммарный начисленный опыт
}
