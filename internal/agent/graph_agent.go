package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"slate/internal/model"
	"slate/internal/render"
	"slate/internal/vocab"
)

const (
	nodeClassify = "classify"
	nodeRender   = "render"
)

// RepurposeAgent 内容改写助手：分类 -> 词汇替换 -> 模板渲染
type RepurposeAgent struct {
	runner      compose.Runnable[model.RepurposeRequest, *model.Bundle]
	instruction *prompt.DefaultChatTemplate
}

// NewRepurposeAgent 编译处理图，启动时调用一次
func NewRepurposeAgent(ctx context.Context) (*RepurposeAgent, error) {
	graph := compose.NewGraph[model.RepurposeRequest, *model.Bundle]()

	if err := graph.AddLambdaNode(nodeClassify, compose.InvokableLambda(classify)); err != nil {
		return nil, fmt.Errorf("add classify node: %w", err)
	}
	if err := graph.AddLambdaNode(nodeRender, compose.InvokableLambda(renderBundle)); err != nil {
		return nil, fmt.Errorf("add render node: %w", err)
	}
	if err := graph.AddEdge(compose.START, nodeClassify); err != nil {
		return nil, fmt.Errorf("add edge: %w", err)
	}
	if err := graph.AddEdge(nodeClassify, nodeRender); err != nil {
		return nil, fmt.Errorf("add edge: %w", err)
	}
	if err := graph.AddEdge(nodeRender, compose.END); err != nil {
		return nil, fmt.Errorf("add edge: %w", err)
	}

	runner, err := graph.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile graph: %w", err)
	}

	return &RepurposeAgent{
		runner: runner,
		instruction: prompt.FromMessages(schema.FString,
			schema.SystemMessage("Extract insights from {source} for a {audience} using a {voice} tone.")),
	}, nil
}

// Execute 执行一次完整的改写流程
func (a *RepurposeAgent) Execute(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error) {
	bundle, err := a.runner.Invoke(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("graph invocation failed: %w", err)
	}
	return bundle, nil
}

// Instruction 拼装系统指令，仅用于日志
func (a *RepurposeAgent) Instruction(ctx context.Context, req model.RepurposeRequest) string {
	messages, err := a.instruction.Format(ctx, map[string]any{
		"source":   req.SourceContent,
		"audience": req.TargetAudience,
		"voice":    req.BrandVoice,
	})
	if err != nil || len(messages) == 0 {
		return fmt.Sprintf("Extract insights from %s for a %s using a %s tone.",
			req.SourceContent, req.TargetAudience, req.BrandVoice)
	}
	return messages[0].Content
}

// Info 获取agent信息
func (a *RepurposeAgent) Info() map[string]interface{} {
	return map[string]interface{}{
		"name":         "b2b_repurpose_agent",
		"description":  "根据原始文稿识别领域，替换领域词汇，生成分析、LinkedIn帖子、推文串和视频脚本。",
		"domains":      vocab.Domains(),
		"thread_roles": render.ThreadRoles,
		"nodes":        []string{nodeClassify, nodeRender},
	}
}

func classify(_ context.Context, req model.RepurposeRequest) (model.Classified, error) {
	domain, v := vocab.Classify(req.SourceContent)
	return model.Classified{Request: req, Domain: domain, Vocabulary: v}, nil
}

func renderBundle(_ context.Context, c model.Classified) (*model.Bundle, error) {
	return render.Render(c), nil
}
