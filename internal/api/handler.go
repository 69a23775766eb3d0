package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"slate/internal/agent"
	"slate/internal/model"
	"slate/internal/service"
	"slate/internal/tools"
)

// handleRepurpose 处理内容改写请求
func handleRepurpose(svc *service.RepurposeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.RepurposeRequest

		// 请求体无法解析时同样视为缺少必填字段
		if err := c.ShouldBindJSON(&req); err != nil || service.Validate(req) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrSourceRequired.Error()})
			return
		}

		ctx := c.Request.Context()
		log := requestLogger(c)
		log.Infof("Processing content for %s with %s tone...", req.TargetAudience, req.BrandVoice)
		log.Infof("Final Prompt: %s", svc.Instruction(ctx, req))

		bundle, err := svc.Run(ctx, req)
		if err != nil {
			if errors.Is(err, service.ErrSourceRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.WithError(err).Error("repurpose failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, bundle)
	}
}

// handleAgentInfo 处理agent信息请求
func handleAgentInfo(a *agent.RepurposeAgent) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, a.Info())
	}
}

// handleToolGenerate 直接调用eino工具，不经过模拟延迟
func handleToolGenerate(tool *tools.RepurposeTool) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result, err := tool.InvokableRun(c.Request.Context(), string(body))
		if err != nil {
			if errors.Is(err, service.ErrSourceRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			requestLogger(c).WithError(err).Warn("tool invocation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(result))
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "slate-repurpose",
	})
}

func requestLogger(c *gin.Context) *logrus.Entry {
	return logrus.WithField("request_id", c.GetString(requestIDKey))
}
