package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"slate/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case generatedMsg:
		return m.handleGenerated(msg), nil

	case toastExpiredMsg:
		// 旧的计时不能隐藏新的提示
		if msg.seq == m.toastSeq {
			m.toastVisible = false
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if m.screen == screenLanding {
			return m.updateLanding(msg)
		}
		return m.updateDashboard(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Start):
		m.screen = screenDashboard
		return m, m.focusField(m.focus)
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// 弹窗关闭前屏蔽其他按键
	if m.alert != "" {
		if key.Matches(msg, keys.Dismiss) {
			m.alert = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		m.screen = screenLanding
		return m, nil
	case key.Matches(msg, keys.NextField):
		return m, m.focusField((m.focus + 1) % fieldCount)
	case key.Matches(msg, keys.PrevField):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, keys.Generate):
		return m.generate()
	case key.Matches(msg, keys.CopyPost):
		if m.output == nil {
			return m, nil
		}
		return m.copy(m.output.LinkedinPost)
	case key.Matches(msg, keys.CopyThread):
		if m.output == nil {
			return m, nil
		}
		return m.copy(strings.Join(m.output.TwitterThread, "\n\n"))
	case key.Matches(msg, keys.CopyScript):
		if m.output == nil {
			return m, nil
		}
		return m.copy(m.output.VideoScript.HookVisual + "\n\n" + m.output.VideoScript.ScriptBody)
	case msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// updateFocused 将输入交给当前字段，表单变化时保存
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen != screenDashboard {
		return m, nil
	}

	before := m.form()
	var cmd tea.Cmd
	if m.focus == fieldSource {
		m.source, cmd = m.source.Update(msg)
	} else {
		m.inputs[m.focus-1], cmd = m.inputs[m.focus-1].Update(msg)
	}

	if after := m.form(); after != before {
		m.saveForm(after)
	}
	return m, cmd
}

func (m *Model) saveForm(form model.RepurposeRequest) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(context.Background(), form); err != nil {
		logrus.WithError(err).Warn("failed to persist form")
	}
}

func (m *Model) focusField(i int) tea.Cmd {
	m.source.Blur()
	for j := range m.inputs {
		m.inputs[j].Blur()
	}

	m.focus = i
	if i == fieldSource {
		return m.source.Focus()
	}
	return m.inputs[i-1].Focus()
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	if !m.canGenerate() {
		return m, nil
	}

	m.phase = phaseLoading
	form := m.form()
	client := m.client
	request := func() tea.Msg {
		bundle, err := client.Repurpose(context.Background(), form)
		return generatedMsg{bundle: bundle, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, request)
}

func (m Model) handleGenerated(msg generatedMsg) Model {
	if msg.err != nil {
		logrus.WithError(msg.err).Error("Error generating assets")
		m.alert = connectionFailedAlert
		if m.output == nil {
			m.phase = phaseEmpty
		} else {
			m.phase = phasePopulated
		}
		return m
	}

	m.output = msg.bundle
	m.phase = phasePopulated
	m.viewport.SetContent(m.renderOutput())
	m.viewport.GotoTop()
	return m
}

func (m Model) copy(text string) (tea.Model, tea.Cmd) {
	if m.clipboard != nil {
		if err := m.clipboard(text); err != nil {
			logrus.WithError(err).Warn("clipboard write failed")
		}
	}

	m.toastSeq++
	m.toastVisible = true
	seq := m.toastSeq
	return m, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) resize() {
	formWidth := m.width * 3 / 10
	if formWidth < 30 {
		formWidth = 30
	}
	m.source.SetWidth(formWidth - 4)
	for i := range m.inputs {
		m.inputs[i].Width = formWidth - 4
	}

	m.viewport.Width = max(m.width-formWidth-4, 20)
	m.viewport.Height = max(m.height-4, 5)
	if m.output != nil {
		m.viewport.SetContent(m.renderOutput())
	}
}
