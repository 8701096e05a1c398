package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"time"

	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/logger"
	"perkly/internal/repository"
	"perkly/internal/service"
	"perkly/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                    *sql.DB
	Logger                *zap.SugaredLogger
	CardRepository        repository.CardRepository
	ApiRequestRepository  repository.ApiRequestRepository
	RecommendationService service.RecommendationService
	AdminJwtSecret        string
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.injectLoggerMiddlware)
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to perkly"})
	})
	router.GET("/categories", m.listCategories)
	router.GET("/subcategories", m.listSubCategories)
	router.GET("/programs", m.listPrograms)
	router.POST("/recommend", m.recommend)

	admin := router.Group("/cards", m.adminAuthMiddleware)
	admin.GET("", m.listCards)
	admin.POST("", m.addCard)
	admin.PATCH("/:id", m.updateCard)
	admin.DELETE("/:id", m.deleteCard)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) injectLoggerMiddlware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = logger.New()
	}
	ctx.Set(logger.ContextKey, log)
	ctx.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   util.StrPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StrPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StrPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			logger.FromContext(ctx).Warnf("failed to update api request: %v", err)
		}
	}
}
