package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps bundles what the router wires into handlers.
type RouterDeps struct {
	UserUsecase    usecasecontract.IUserUseCase
	PostUsecase    usecasecontract.IPostUseCase
	CommentUsecase usecasecontract.ICommentUseCase
	VoteUsecase    usecasecontract.IVoteUseCase
	UploadUsecase  usecasecontract.IUploadUseCase
	JWTService     usecase.JWTService
	DB             Pinger
	MaxUploadBytes int64
	RateLimit      float64
}

type Router struct {
	userHandler    *UserHandler
	postHandler    *PostHandler
	commentHandler *CommentHandler
	voteHandler    *VoteHandler
	uploadHandler  *UploadHandler
	healthHandler  *HealthHandler
	jwtService     usecase.JWTService
	rateLimit      float64
}

func NewRouter(deps RouterDeps) *Router {
	rate := deps.RateLimit
	if rate <= 0 {
		rate = 10
	}
	return &Router{
		userHandler:    NewUserHandler(deps.UserUsecase),
		postHandler:    NewPostHandler(deps.PostUsecase),
		commentHandler: NewCommentHandler(deps.CommentUsecase),
		voteHandler:    NewVoteHandler(deps.VoteUsecase),
		uploadHandler:  NewUploadHandler(deps.UploadUsecase, deps.MaxUploadBytes),
		healthHandler:  NewHealthHandler(deps.DB),
		jwtService:     deps.JWTService,
		rateLimit:      rate,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Metrics())
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", r.healthHandler.Healthz)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuth(r.jwtService))

	users := v1.Group("/users")
	{
		users.POST("", r.userHandler.SignUp)
		users.GET("/duplicate", r.userHandler.CheckDuplicate)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.GetPostsHandler)
		posts.POST("", r.postHandler.CreatePostHandler)
		posts.GET("/:postID", r.postHandler.GetPostHandler)
		posts.PUT("/:postID", r.postHandler.UpdatePostHandler)
		posts.DELETE("/:postID", r.postHandler.DeletePostHandler)

		posts.POST("/:postID/vote", r.voteHandler.VotePostHandler)
		posts.GET("/:postID/vote", r.voteHandler.GetUserVoteHandler)

		posts.GET("/:postID/comments", r.commentHandler.GetPostComments)
		posts.POST("/:postID/comments", r.commentHandler.CreateComment)
	}

	comments := v1.Group("/comments")
	{
		comments.PUT("/:commentID", r.commentHandler.UpdateComment)
		comments.DELETE("/:commentID", r.commentHandler.DeleteComment)
	}

	files := v1.Group("/files")
	{
		files.POST("", r.uploadHandler.UploadFileHandler)
		files.GET("/:fileID", r.uploadHandler.GetFileHandler)
	}
}
