// Package ui 终端界面：落地页和表单/结果页，通过改写服务生成内容
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/model"
)

// ToastDuration 复制提示的显示时长
const ToastDuration = 2 * time.Second

const connectionFailedAlert = "Forge connection failed. Ensure backend server is running on port 3001."

type screen int

const (
	screenLanding screen = iota
	screenDashboard
)

type phase int

const (
	phaseEmpty phase = iota
	phaseLoading
	phasePopulated
)

// 字段索引，fieldSource为多行文本框，其余为单行输入框
const (
	fieldSource = iota
	fieldAudience
	fieldVoice
	fieldGoal
	fieldCount
)

// Repurposer 发起一次生成请求
type Repurposer interface {
	Repurpose(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error)
}

// FormSaver 每次编辑后保存整个表单
type FormSaver interface {
	Save(ctx context.Context, form model.RepurposeRequest) error
}

type Options struct {
	Client    Repurposer
	Store     FormSaver
	Form      model.RepurposeRequest // rehydrated form, zero value when nothing was saved
	Clipboard func(string) error
}

type generatedMsg struct {
	bundle *model.Bundle
	err    error
}

type toastExpiredMsg struct {
	seq int
}

type Model struct {
	client    Repurposer
	store     FormSaver
	clipboard func(string) error

	screen screen
	phase  phase

	source textarea.Model
	inputs [fieldCount - 1]textinput.Model
	focus  int

	output   *model.Bundle
	spinner  spinner.Model
	viewport viewport.Model

	toastVisible bool
	toastSeq     int
	alert        string

	width  int
	height int
	styles styles
}

func New(opts Options) Model {
	src := textarea.New()
	src.Placeholder = "Paste transcript here..."
	src.ShowLineNumbers = false
	src.CharLimit = 0
	src.SetHeight(10)
	src.SetValue(opts.Form.SourceContent)
	src.Focus()

	placeholders := [fieldCount - 1]string{
		"e.g., Series A SaaS Founders",
		"e.g., Direct, skeptical, operator",
		"e.g., Authority & Leads",
	}
	values := [fieldCount - 1]string{opts.Form.TargetAudience, opts.Form.BrandVoice, opts.Form.PrimaryGoal}

	var inputs [fieldCount - 1]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.SetValue(values[i])
		inputs[i] = ti
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:    opts.Client,
		store:     opts.Store,
		clipboard: opts.Clipboard,
		screen:    screenLanding,
		phase:     phaseEmpty,
		source:    src,
		inputs:    inputs,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		styles:    defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// form 汇总四个字段
func (m Model) form() model.RepurposeRequest {
	return model.RepurposeRequest{
		SourceContent:  m.source.Value(),
		TargetAudience: m.inputs[fieldAudience-1].Value(),
		BrandVoice:     m.inputs[fieldVoice-1].Value(),
		PrimaryGoal:    m.inputs[fieldGoal-1].Value(),
	}
}

// canGenerate 生成按钮是否可用
func (m Model) canGenerate() bool {
	return m.phase != phaseLoading && m.source.Value() != ""
}

// Run 在备用屏幕中启动界面，退出前阻塞
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
