package routes

import (
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-hosteldesk/db"
	"go-hosteldesk/handlers"
)

// SetupRouter wires every endpoint. The store and the optional Natural
// Language client are injected into handlers via closures.
func SetupRouter(store db.Store, nlpClient *language.Client) *gin.Engine {
	r := gin.Default()

	// The dashboard is served from a different origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))

	r.GET("/", handlers.Root)
	r.GET("/test", func(c *gin.Context) { handlers.TestDatabase(c, store) })

	api := r.Group("/api")
	{
		api.GET("/hello", handlers.Hello)

		api.POST("/students", func(c *gin.Context) { handlers.CreateStudent(c, store) })
		api.GET("/students", func(c *gin.Context) { handlers.ListStudents(c, store) })

		api.POST("/staff", func(c *gin.Context) { handlers.CreateStaff(c, store) })
		api.GET("/staff", func(c *gin.Context) { handlers.ListStaff(c, store) })

		api.POST("/rooms", func(c *gin.Context) { handlers.CreateRoom(c, store) })
		api.GET("/rooms", func(c *gin.Context) { handlers.ListRooms(c, store) })

		api.POST("/allocations", func(c *gin.Context) { handlers.CreateAllocation(c, store) })
		api.GET("/allocations", func(c *gin.Context) { handlers.ListAllocations(c, store) })

		api.POST("/attendance", func(c *gin.Context) { handlers.CreateAttendance(c, store) })
		api.GET("/attendance", func(c *gin.Context) { handlers.ListAttendance(c, store) })

		api.POST("/visitors", func(c *gin.Context) { handlers.CreateVisitor(c, store) })
		api.GET("/visitors", func(c *gin.Context) { handlers.ListVisitors(c, store) })

		api.POST("/complaints", func(c *gin.Context) { handlers.CreateComplaint(c, store) })
		api.GET("/complaints", func(c *gin.Context) { handlers.ListComplaints(c, store) })
		api.POST("/complaints/analyze", handlers.AnalyzeComplaint)
		api.POST("/complaints/analyze/cloud", func(c *gin.Context) { handlers.AnalyzeComplaintCloud(c, nlpClient) })
		api.GET("/complaints/summary", func(c *gin.Context) { handlers.SummarizeComplaints(c, store) })
	}

	return r
}
