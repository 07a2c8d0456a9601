package routes

import (
	"net/http"

	"github.com/kader009/foodlane-server/controllers"
	"github.com/kader009/foodlane-server/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the constructed services into the router; handlers never reach
// for globals.
type Deps struct {
	Users    *services.UserService
	Foods    *services.FoodService
	Orders   *services.OrderService
	Payments *services.PaymentService
	Gateway  services.PaymentGateway
	Hub      *services.OrderHub
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	auth := controllers.NewAuthController(deps.Users)
	user := controllers.NewUserController(deps.Users)
	food := controllers.NewFoodController(deps.Foods)
	order := controllers.NewOrderController(deps.Orders)
	payment := controllers.NewPaymentController(deps.Payments, deps.Gateway)
	realtime := controllers.NewRealtimeController(deps.Hub)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Restaurant server is on")
	})

	r.GET("/foodData", food.List)
	r.GET("/foodData/:id", food.Get)
	r.POST("/foodData", food.Create)
	r.PATCH("/foodData/:id", food.Update)
	r.POST("/foodData/:id/image", food.UploadImage)

	r.POST("/orders", order.Create)
	r.GET("/orders", order.List)
	r.DELETE("/orders/:id", order.Delete)

	r.POST("/user", user.Create)
	r.GET("/user", user.List)
	r.POST("/login", auth.Login)

	r.POST("/create-payment-intent", payment.CreateIntent)
	r.POST("/payment", payment.Settle)
	r.GET("/payment/:email", payment.ListByEmail)

	r.GET("/ws/orders", realtime.OrdersWS)

	return r
}
