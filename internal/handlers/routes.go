package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes builds the full engine. The generator and /qr/ routes are
// intercepted explicitly; everything else falls through to a plain file
// server over the handler's root directory, the same tree the scanner app
// lives in.
func RegisterRoutes(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(CORS())
	r.Use(RequestID())

	r.GET("/generator", h.SelectorPage)
	r.GET("/generator/", h.SelectorPage)
	r.GET("/qr/*code", h.QRPage)

	fileServer := http.FileServer(http.Dir(h.rootDir))
	r.NoRoute(gin.WrapH(fileServer))

	return r
}
