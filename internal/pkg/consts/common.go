package consts

const (
	// DefaultUsersTTL 用户列表缓存默认秒数
	DefaultUsersTTL = 60
)

// 错误文案，与线上客户端保持一致
const (
	MsgUserNotFound        = "User not found"
	MsgInternalServerError = "Internal Server Error"
	MsgInternalServiceErr  = "Internal Service Error"
	MsgBadRequest          = "Bad Request"
)
