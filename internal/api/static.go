package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// publicFallback 未匹配路由时按路径查找 public 目录下的文件，如 /style.css
func publicFallback(root string) gin.HandlerFunc {
	fs := gin.Dir(root, false)
	fileServer := http.FileServer(fs)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		f, err := fs.Open(c.Request.URL.Path)
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		stat, err := f.Stat()
		_ = f.Close()
		if err != nil || stat.IsDir() {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
