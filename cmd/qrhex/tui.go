// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unixdj/qrhex"
	"github.com/unixdj/qrhex/internal/logger"
	"github.com/unixdj/qrhex/symbol"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

const (
	editWidth  = 2*qrhex.LineBytes + 2
	editHeight = 12
)

// model is the interactive editor.  The edit pane holds the original
// data as hex; the display pane shows the displayed buffer.
type model struct {
	s      *qrhex.Session
	edit   textarea.Model
	last   string // edit text last parsed
	out    string // file written by generate
	level  symbol.Level
	status string // result of the last command
	failed bool   // status reports an error
	warn   string // capacity advisory of the last generate
	height int

	copy func(string) error
	save func(name string, data []byte) error
}

func newModel(s *qrhex.Session, out string, level symbol.Level) model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "hex data"
	ta.SetWidth(editWidth)
	ta.SetHeight(editHeight)
	ta.SetValue(s.EditText())
	ta.Focus()
	return model{
		s:     s,
		edit:  ta,
		last:  ta.Value(),
		out:   out,
		level: level,
		copy:  clipboard.WriteAll,
		save: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0666)
		},
	}
}

func runTUI(s *qrhex.Session, out string, level symbol.Level) error {
	logger.Debug("starting editor", "bytes", len(s.Original), "out", out)
	_, err := tea.NewProgram(newModel(s, out, level), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t":
			m.s.SetShowDerived(!m.s.ShowDerived)
			m.setStatus(false, "")
			m.warn = ""
			return m, nil
		case "ctrl+l":
			m.toggleLarge()
			return m, nil
		case "ctrl+y":
			m.copyText("display hex", m.s.DisplayText())
			return m, nil
		case "ctrl+r":
			m.copyText("raw hex", m.s.RawText())
			return m, nil
		case "ctrl+e":
			m.copyText("edit hex", m.edit.Value())
			return m, nil
		case "ctrl+g":
			m.generate()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	if v := m.edit.Value(); v != m.last {
		m.last = v
		m.setStatus(false, "")
		m.warn = ""
		if err := m.s.Edit(v); err != nil {
			logger.Debug("edit", "error", err)
		}
	}
	return m, cmd
}

func (m *model) setStatus(failed bool, s string) {
	m.status, m.failed = s, failed
}

func (m *model) toggleLarge() {
	if m.s.Override.Locked {
		m.setStatus(false, "large size is fixed for this length")
		return
	}
	m.s.SetOverride(!m.s.Override.Checked)
	m.setStatus(false, "")
	m.warn = ""
}

func (m *model) copyText(what, s string) {
	if s == "" {
		m.setStatus(false, "nothing to copy")
		return
	}
	if err := m.copy(strings.ToUpper(s)); err != nil {
		m.setStatus(true, "copy failed: "+err.Error())
		return
	}
	m.setStatus(false, "copied "+what)
}

// generate encodes the displayed buffer and saves it as PNG.
func (m *model) generate() {
	m.warn = ""
	b, adv, err := m.s.EncodeRequest()
	if errors.Is(err, qrhex.ErrEmptyPayload) {
		m.setStatus(true, "generate error: no data")
		return
	} else if err != nil {
		m.setStatus(true, "generate error: "+err.Error())
		return
	}
	m.warn = adv.Warning(len(b))
	c, err := symbol.Encode(b, m.level)
	if err != nil {
		m.setStatus(true, fmt.Sprintf("generate error: %v (%d bytes)",
			err, len(b)))
		return
	}
	if err := m.save(m.out, c.PNG()); err != nil {
		m.setStatus(true, "generate error: "+err.Error())
		return
	}
	logger.Debug("generated", "bytes", len(b), "version", c.Version,
		"file", m.out)
	m.setStatus(false, fmt.Sprintf(
		"generated QR code (%d bytes, version %d) in %s",
		len(b), c.Version, m.out))
}

func check(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

// info describes the session data.
func (m model) info() string {
	s := m.s
	if s.Err != nil {
		return errorStyle.Render(s.Err.Error())
	}
	if s.Original == nil {
		return "no data"
	}
	d := s.Decision()
	v := "unknown"
	if d.Version != 0 {
		v = fmt.Sprint(d.Version)
	}
	lock := ""
	if s.Override.Locked {
		lock = " (fixed)"
	}
	return fmt.Sprintf("%d bytes, version %s, %s size   "+
		"%s transform   %s large%s",
		d.Length, v, d.Class, check(s.ShowDerived),
		check(s.Override.Checked), lock)
}

func (m model) display() string {
	text := m.s.DisplayText()
	lines := strings.Split(text, "\n")
	if n := m.height - editHeight - 10; m.height > 0 && len(lines) > n {
		lines = append(lines[:max(n, 1)], "...")
	}
	title := "original"
	if m.s.ShowDerived {
		title = "transformed"
	}
	return paneStyle.Render(titleStyle.Render(title) + "\n" +
		strings.Join(lines, "\n"))
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("qrhex") + "  " + m.info() + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.display(),
		paneStyle.Render(titleStyle.Render("edit")+"\n"+m.edit.View())))
	b.WriteByte('\n')
	if m.status != "" {
		st := statusStyle
		if m.failed {
			st = errorStyle
		}
		b.WriteString(st.Render(m.status) + "\n")
	}
	if m.warn != "" {
		b.WriteString(warnStyle.Render("warning: "+m.warn) + "\n")
	}
	b.WriteString(helpStyle.Render("ctrl+t transform  ctrl+l large  " +
		"ctrl+y copy  ctrl+r copy raw  ctrl+e copy edit  " +
		"ctrl+g generate " + m.out + "  esc quit"))
	return b.String()
}
