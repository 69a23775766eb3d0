package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"slate/internal/model"
)

// ResponseDelay 模拟处理耗时，固定值
const ResponseDelay = 1500 * time.Millisecond

const previewRunes = 32

var ErrSourceRequired = errors.New("SOURCE_CONTENT is required")

// Pipeline 改写流程
type Pipeline interface {
	Execute(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error)
	Instruction(ctx context.Context, req model.RepurposeRequest) string
}

type RepurposeService struct {
	pipeline Pipeline
	delay    time.Duration
}

func NewRepurposeService(p Pipeline) *RepurposeService {
	return &RepurposeService{pipeline: p, delay: ResponseDelay}
}

// Validate 只校验必填的原文字段
func Validate(req model.RepurposeRequest) error {
	if req.SourceContent == "" {
		return ErrSourceRequired
	}
	return nil
}

// Instruction 返回本次请求拼装出的系统指令
func (s *RepurposeService) Instruction(ctx context.Context, req model.RepurposeRequest) string {
	return s.pipeline.Instruction(ctx, req)
}

// Generate 校验并生成结果，不含延迟。校验通过后不再受调用方取消影响
func (s *RepurposeService) Generate(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	bundle, err := s.pipeline.Execute(context.WithoutCancel(ctx), req)
	if err != nil {
		return nil, fmt.Errorf("repurpose %q: %w", preview(req.SourceContent), err)
	}
	return bundle, nil
}

// Run 生成结果后等待固定延迟再返回。延迟不可取消：
// 请求一旦通过校验，结果一定会在延迟结束后交付。
func (s *RepurposeService) Run(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error) {
	bundle, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	<-timer.C

	return bundle, nil
}

// preview 截取原文前32个字符用于错误信息
func preview(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	return string([]rune(s)[:previewRunes])
}
