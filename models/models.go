package models

// User is a registered account. PasswordHash never crosses the HTTP
// boundary.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Task is a user-owned unit of work.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsComplete  bool    `json:"is_complete"`
	UserID      int64   `json:"user_id"`
}

// TaskPatch carries a partial update. A nil field means "leave
// unchanged"; there is no way to express "set to null" through the API,
// matching the tri-state update semantics of PUT /tasks/:id.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsComplete  *bool   `json:"isComplete"`
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.IsComplete == nil
}
