package dto

// CreateUserDTO POST /api/users
type CreateUserDTO struct {
	Username FlexString `json:"username" form:"username"`
}

// AddExerciseDTO POST /api/users/:_id/exercises，duration 与 date 保持原始文本
type AddExerciseDTO struct {
	Description FlexString `json:"description" form:"description"`
	Duration    FlexString `json:"duration" form:"duration"`
	Date        FlexString `json:"date" form:"date"`
}

// LogQueryDTO GET /api/users/:_id/logs 查询参数
type LogQueryDTO struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

// UserDTO 用户摘要
type UserDTO struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseDTO 追加运动后的返回，ID 为用户 ID
type ExerciseDTO struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntryDTO 日志中的单条运动
type LogEntryDTO struct {
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Date        string `json:"date"`
}

// UserLogDTO Count 为累计总数，不是过滤后的条数
type UserLogDTO struct {
	Username string         `json:"username"`
	Count    int            `json:"count"`
	ID       string         `json:"_id"`
	Log      []*LogEntryDTO `json:"log"`
}

// ErrorDTO 统一错误返回
type ErrorDTO struct {
	Error string `json:"error"`
}

// ExerciseLoggedEvent 追加运动后发布到 Kafka 的事件
type ExerciseLoggedEvent struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Date        string `json:"date"`
	Count       int    `json:"count"`
	LoggedAt    int64  `json:"logged_at"`
}
