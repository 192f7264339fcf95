package consts

const (
	UserListKey    = "exercise:users:list"
	UserListGenKey = "exercise:users:list:gen"
)
