package proto

// UserResponse is the JSON shape of a user as returned by the users endpoints.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseResponse is returned after logging an exercise. ID is the owning
// user's id and Date is rendered in long form.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntry is one exercise inside a LogResponse.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the filtered exercise log of one user. Count always equals len(Log).
type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// DeleteResult summarizes a purge.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// DeleteResponse is returned by the admin purge endpoints.
type DeleteResponse struct {
	Message string       `json:"message"`
	Result  DeleteResult `json:"result"`
}

// ErrorResponse carries a body-level error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
