package api

import (
	"errors"
	"net/http"

	"github.com/LJTian/NewsFetcher/internal/collector"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	fetcher  collector.Fetcher
	defaults collector.Params
	log      *zap.Logger
}

// NewServer defaults 用于填充请求中未给出的 count / category
func NewServer(fetcher collector.Fetcher, defaults collector.Params, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{fetcher: fetcher, defaults: defaults, log: log}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.getNews)
		v1.GET("/news/text", s.getNewsText)
		v1.GET("/categories", s.listCategories)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getNews(c *gin.Context) {
	resp, ok := s.execute(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getNewsText(c *gin.Context) {
	resp, ok := s.execute(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, collector.FormatOutput(resp.Data))
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    collector.Categories(),
	})
}

// execute 解析查询参数并抓取；出错时已写好响应
func (s *Server) execute(c *gin.Context) (*collector.Response, bool) {
	var p collector.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_params",
			"message": err.Error(),
		})
		return nil, false
	}
	if p.Count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_params",
			"message": "count must be positive",
		})
		return nil, false
	}
	if p.Count == 0 {
		p.Count = s.defaults.Count
	}
	if p.Category == "" {
		p.Category = s.defaults.Category
	}

	resp, err := s.fetcher.Execute(p)
	if err != nil {
		s.log.Error("fetch news failed", zap.Error(err))
		message := "internal server error"
		var fe *collector.FetchError
		if errors.As(err, &fe) {
			message = fe.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": message,
		})
		return nil, false
	}
	return resp, true
}
