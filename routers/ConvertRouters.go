package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/KartForge/ShpDxfBridge/views"
)

func ConvertRouters(r *gin.Engine) {
	UserController := &views.UserController{}
	convertRouter := r.Group("/convert")
	{
		convertRouter.POST("/Upload", UserController.Upload)
		convertRouter.GET("/Preview", UserController.Preview)
		convertRouter.GET("/Download", UserController.Download)
	}
	{
		convertRouter.POST("/ApplyCrs", UserController.ApplyCrs)
		convertRouter.GET("/CrsCatalog", UserController.CrsCatalog)
		convertRouter.GET("/Records", UserController.Records)
	}
}
