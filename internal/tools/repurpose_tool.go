package tools

import (
	"context"
	"encoding/json"
	"fmt"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"slate/internal/model"
)

// Generator 生成改写结果，不含延迟
type Generator interface {
	Generate(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error)
}

// RepurposeTool 实现eino框架的内容改写工具
type RepurposeTool struct {
	gen Generator
}

// NewRepurposeTool 创建内容改写工具实例
func NewRepurposeTool(gen Generator) *RepurposeTool {
	return &RepurposeTool{gen: gen}
}

// Info 获取内容改写工具信息
func (t *RepurposeTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	params := map[string]*schema.ParameterInfo{
		"SOURCE_CONTENT":  {Type: schema.String, Required: true, Desc: "原始文稿"},
		"TARGET_AUDIENCE": {Type: schema.String, Required: false, Desc: "目标受众"},
		"BRAND_VOICE":     {Type: schema.String, Required: false, Desc: "品牌语气"},
		"PRIMARY_GOAL":    {Type: schema.String, Required: false, Desc: "主要目标"},
	}
	return &schema.ToolInfo{
		Name:        "repurpose_generate",
		Desc:        "将原始文稿改写为分析、LinkedIn帖子、推文串和视频脚本",
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}, nil
}

// InvokableRun 执行内容改写任务
func (t *RepurposeTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...einotool.Option) (string, error) {
	var args model.RepurposeRequest
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	bundle, err := t.gen.Generate(ctx, args)
	if err != nil {
		return "", err
	}

	b, err := json.Marshal(bundle)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// 确保RepurposeTool实现了einotool.InvokableTool接口
var _ einotool.InvokableTool = (*RepurposeTool)(nil)
