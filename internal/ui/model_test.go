package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/internal/model"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeClient struct {
	bundle *model.Bundle
	err    error
	calls  []model.RepurposeRequest
}

func (f *fakeClient) Repurpose(_ context.Context, req model.RepurposeRequest) (*model.Bundle, error) {
	f.calls = append(f.calls, req)
	return f.bundle, f.err
}

type fakeStore struct {
	saved []model.RepurposeRequest
}

func (f *fakeStore) Save(_ context.Context, form model.RepurposeRequest) error {
	f.saved = append(f.saved, form)
	return nil
}

type harness struct {
	client    *fakeClient
	store     *fakeStore
	clipboard []string
}

func newHarness(form model.RepurposeRequest) (*harness, Model) {
	h := &harness{
		client: &fakeClient{bundle: sampleBundle()},
		store:  &fakeStore{},
	}
	m := New(Options{
		Client: h.client,
		Store:  h.store,
		Form:   form,
		Clipboard: func(s string) error {
			h.clipboard = append(h.clipboard, s)
			return nil
		},
	})
	return h, m
}

func sampleBundle() *model.Bundle {
	return &model.Bundle{
		Analysis: model.Analysis{
			DomainDetected: model.DomainAgTech,
			TheBleed:       "microbial depletion leading to yield collapse",
			TheMechanism:   "Bacillus microbes",
			TheROI:         "30% increase in yield and 15% reduction in input costs",
		},
		LinkedinPost:  "[THE COST OF INACTION]",
		TwitterThread: []string{"hook", "one", "two", "three", "cta"},
		VideoScript:   model.VideoScript{HookVisual: "[Visual: fields]", ScriptBody: "\"body\""},
	}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok)
	return result, cmd
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// runCmd executes a command and flattens batches. Only use it on commands
// that return immediately.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findGenerated(t *testing.T, msgs []tea.Msg) generatedMsg {
	t.Helper()
	for _, msg := range msgs {
		if g, ok := msg.(generatedMsg); ok {
			return g
		}
	}
	t.Fatal("no generatedMsg produced")
	return generatedMsg{}
}

func dashboard(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, keyType(tea.KeyEnter))
	require.Equal(t, screenDashboard, m.screen)
	return m
}

// =============================================================================
// NAVIGATION
// =============================================================================

func TestLanding_StartAndBack(t *testing.T) {
	_, m := newHarness(model.RepurposeRequest{})
	assert.Equal(t, screenLanding, m.screen)
	assert.Contains(t, m.View(), "Transform Raw Transcripts into Authority.")

	m = dashboard(t, m)
	assert.Contains(t, m.View(), "Configure your inputs and hit generate")

	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, screenLanding, m.screen)
}

func TestLanding_IgnoresTyping(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{})
	m, _ = send(t, m, runes("x"))
	assert.Equal(t, screenLanding, m.screen)
	assert.Empty(t, h.store.saved)
}

func TestQuit(t *testing.T) {
	_, m := newHarness(model.RepurposeRequest{})
	_, cmd := send(t, m, keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// =============================================================================
// FORM PERSISTENCE
// =============================================================================

func TestNew_Rehydrates(t *testing.T) {
	form := model.RepurposeRequest{
		SourceContent:  "saved transcript",
		TargetAudience: "Fleet Managers",
		BrandVoice:     "Direct",
		PrimaryGoal:    "Leads",
	}
	_, m := newHarness(form)
	assert.Equal(t, form, m.form())
}

func TestTyping_SavesWholeForm(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{TargetAudience: "CFOs", PrimaryGoal: "Leads"})
	m = dashboard(t, m)

	m, _ = send(t, m, runes("hi"))
	require.NotEmpty(t, h.store.saved)
	assert.Equal(t, model.RepurposeRequest{SourceContent: "hi", TargetAudience: "CFOs", PrimaryGoal: "Leads"},
		h.store.saved[len(h.store.saved)-1])

	// 切换到受众字段继续输入
	m, _ = send(t, m, keyType(tea.KeyTab))
	assert.Equal(t, fieldAudience, m.focus)
	m, _ = send(t, m, runes("!"))
	assert.Equal(t, "CFOs!", h.store.saved[len(h.store.saved)-1].TargetAudience)
	assert.Equal(t, "hi", h.store.saved[len(h.store.saved)-1].SourceContent)

	m, _ = send(t, m, keyType(tea.KeyShiftTab))
	assert.Equal(t, fieldSource, m.focus)
	m, _ = send(t, m, keyType(tea.KeyShiftTab))
	assert.Equal(t, fieldGoal, m.focus)
}

func TestFocusChange_DoesNotSave(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{})
	m = dashboard(t, m)
	_, _ = send(t, m, keyType(tea.KeyTab))
	assert.Empty(t, h.store.saved)
}

// =============================================================================
// GENERATION LIFECYCLE
// =============================================================================

func TestGenerate_DisabledWithoutSource(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{TargetAudience: "CFOs"})
	m = dashboard(t, m)

	m, cmd := send(t, m, keyType(tea.KeyCtrlG))
	assert.Nil(t, cmd)
	assert.Equal(t, phaseEmpty, m.phase)
	assert.Empty(t, h.client.calls)
}

func TestGenerate_Lifecycle(t *testing.T) {
	form := model.RepurposeRequest{SourceContent: "farm notes", TargetAudience: "Growers"}
	h, m := newHarness(form)
	m = dashboard(t, m)

	m, cmd := send(t, m, keyType(tea.KeyCtrlG))
	require.NotNil(t, cmd)
	assert.Equal(t, phaseLoading, m.phase)
	assert.Contains(t, m.View(), "Forging Content...")

	// 加载中再次触发会被忽略
	m, again := send(t, m, keyType(tea.KeyCtrlG))
	assert.Nil(t, again)

	gen := findGenerated(t, runCmd(cmd))
	require.Len(t, h.client.calls, 1)
	assert.Equal(t, form, h.client.calls[0])

	m, _ = send(t, m, gen)
	assert.Equal(t, phasePopulated, m.phase)
	require.NotNil(t, m.output)
	assert.Equal(t, model.DomainAgTech, m.output.Analysis.DomainDetected)
	assert.Contains(t, m.renderOutput(), "Strategic Briefing")
	assert.Contains(t, m.renderOutput(), "BIOLOGICAL/AGTECH")

	// 再次生成回到加载状态，旧结果保留
	m, cmd = send(t, m, keyType(tea.KeyCtrlG))
	require.NotNil(t, cmd)
	assert.Equal(t, phaseLoading, m.phase)
	assert.NotNil(t, m.output)
}

func TestGenerate_FailureShowsBlockingAlert(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{SourceContent: "notes"})
	h.client.err = errors.New("connection refused")
	m = dashboard(t, m)

	m, cmd := send(t, m, keyType(tea.KeyCtrlG))
	m, _ = send(t, m, findGenerated(t, runCmd(cmd)))

	assert.Equal(t, phaseEmpty, m.phase)
	assert.Nil(t, m.output)
	assert.Equal(t, connectionFailedAlert, m.alert)
	assert.Contains(t, m.View(), "Forge connection failed.")

	// 弹窗存在时其他输入被忽略
	m, _ = send(t, m, runes("zzz"))
	assert.Empty(t, h.store.saved)
	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.Empty(t, m.alert)
	assert.Equal(t, screenDashboard, m.screen)
}

func TestGenerate_FailureKeepsPreviousOutput(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{SourceContent: "notes"})
	m = dashboard(t, m)

	m, cmd := send(t, m, keyType(tea.KeyCtrlG))
	m, _ = send(t, m, findGenerated(t, runCmd(cmd)))
	require.NotNil(t, m.output)

	h.client.err = errors.New("boom")
	h.client.bundle = nil
	m, cmd = send(t, m, keyType(tea.KeyCtrlG))
	m, _ = send(t, m, findGenerated(t, runCmd(cmd)))

	assert.Equal(t, phasePopulated, m.phase)
	assert.NotNil(t, m.output)
	assert.NotEmpty(t, m.alert)
}

// =============================================================================
// COPY + TOAST
// =============================================================================

func populated(t *testing.T) (*harness, Model) {
	t.Helper()
	h, m := newHarness(model.RepurposeRequest{SourceContent: "notes"})
	m = dashboard(t, m)
	m, cmd := send(t, m, keyType(tea.KeyCtrlG))
	m, _ = send(t, m, findGenerated(t, runCmd(cmd)))
	require.Equal(t, phasePopulated, m.phase)
	return h, m
}

func TestCopy_Targets(t *testing.T) {
	h, m := populated(t)

	m, _ = send(t, m, keyType(tea.KeyCtrlP))
	m, _ = send(t, m, keyType(tea.KeyCtrlT))
	_, _ = send(t, m, keyType(tea.KeyCtrlR))

	require.Len(t, h.clipboard, 3)
	assert.Equal(t, "[THE COST OF INACTION]", h.clipboard[0])
	assert.Equal(t, strings.Join([]string{"hook", "one", "two", "three", "cta"}, "\n\n"), h.clipboard[1])
	assert.Equal(t, "[Visual: fields]\n\n\"body\"", h.clipboard[2])
}

func TestCopy_ToastAutoDismiss(t *testing.T) {
	_, m := populated(t)

	m, cmd := send(t, m, keyType(tea.KeyCtrlP))
	require.NotNil(t, cmd)
	assert.True(t, m.toastVisible)
	assert.Contains(t, m.View(), "Copied to clipboard")

	m, _ = send(t, m, keyType(tea.KeyCtrlT))
	assert.Equal(t, 2, m.toastSeq)

	// 第一次复制的计时不会隐藏第二次的提示
	m, _ = send(t, m, toastExpiredMsg{seq: 1})
	assert.True(t, m.toastVisible)

	m, _ = send(t, m, toastExpiredMsg{seq: 2})
	assert.False(t, m.toastVisible)
	assert.NotContains(t, m.View(), "Copied to clipboard")
}

func TestCopy_WithoutOutputIgnored(t *testing.T) {
	h, m := newHarness(model.RepurposeRequest{SourceContent: "notes"})
	m = dashboard(t, m)

	m, cmd := send(t, m, keyType(tea.KeyCtrlP))
	assert.Nil(t, cmd)
	assert.False(t, m.toastVisible)
	assert.Empty(t, h.clipboard)
}

// =============================================================================
// WINDOW SIZE
// =============================================================================

func TestWindowSize(t *testing.T) {
	_, m := populated(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 36, m.viewport.Height)

	assert.NotPanics(t, func() {
		m, _ = send(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
		_ = m.View()
	})
}
