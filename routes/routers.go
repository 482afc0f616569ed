package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"petstay/config"
	"petstay/constants"
	"petstay/controllers"
	middlewares "petstay/middleware"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	reservationController := controllers.NewReservationController(db, redisCli, m)
	roomController := controllers.NewRoomController(db, m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", controllers.GetProfile)

	v1.POST("/pets", controllers.CreatePet)
	v1.GET("/pets", controllers.GetPets)
	v1.GET("/pets/:id", controllers.GetPetDetail)

	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.GET("/rooms", controllers.GetRooms)
	v1.GET("/rooms/dates/:roomTypeId", roomController.GetRoomTypeBookedDates)

	v1.GET("/services", controllers.GetServices)
	v1.POST("/services", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateService)

	v1.POST("/reservations", reservationController.CreateReservation)
	v1.GET("/reservations", reservationController.GetReservations)
	v1.DELETE("/reservations/:id", reservationController.CancelReservation)

	v1.POST("/pets/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "pets"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})
}
