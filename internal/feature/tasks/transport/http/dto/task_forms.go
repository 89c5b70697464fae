// Package dto defines request/response shapes for the tasks feature's HTTP transport layer.
package dto

// TaskForm represents the inline creation form posted to /tasks/.
type TaskForm struct {
	Title string `form:"title" binding:"required,max=255"`
}

// TaskUpdateForm represents the edit form posted to /tasks/:id/update.
// The status checkbox posts "on" when checked and nothing when not.
type TaskUpdateForm struct {
	Title  string `form:"title" binding:"required,max=255"`
	Status string `form:"status"`
}

// Done reports whether the status checkbox was checked.
func (f TaskUpdateForm) Done() bool {
	return f.Status == "on" || f.Status == "true"
}

// CreateTaskReq represents the JSON body for POST /api/tasks.
type CreateTaskReq struct {
	Title string `json:"title" binding:"required,max=255"`
}

// TaskItem is one task in a JSON response.
type TaskItem struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status bool   `json:"status"`
}

// TaskPageResponse is the paginated JSON listing for GET /api/tasks.
type TaskPageResponse struct {
	Tasks      []TaskItem `json:"tasks"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	TotalCount int64      `json:"total_count"`
}
