package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGold500))

// Spinner manages a terminal spinner for longer operations using Bubble Tea.
// Reference counting lets overlapping operations share one spinner: it only
// stops when every Start has been matched by a Stop.
type Spinner struct {
	mu        sync.Mutex
	count     int
	message   string
	program   *tea.Program
	isRunning bool
	isTTY     bool
	quitCh    chan struct{}
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

type msgUpdate string
type msgQuit struct{}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgUpdate:
		m.message = string(msg)
		return m, nil
	case msgQuit:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), DimStyle.Render(m.message))
}

// NewSpinner creates a new spinner instance
func NewSpinner() *Spinner {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	return &Spinner{
		isTTY:  isTTY,
		quitCh: make(chan struct{}),
	}
}

// Start begins or continues the spinner with the given message.
// Each call to Start must be paired with a call to Stop.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.message = message

	if s.isRunning {
		if s.program != nil {
			s.program.Send(msgUpdate(message))
		}
		return
	}

	if !s.isTTY {
		// Non-TTY: just print the message once
		fmt.Fprintf(os.Stderr, "%s\n", DimStyle.Render(message))
		return
	}

	s.isRunning = true
	s.quitCh = make(chan struct{})

	model := newSpinnerModel(message)
	s.program = tea.NewProgram(model, tea.WithOutput(os.Stderr))

	go func() {
		_, _ = s.program.Run()
		close(s.quitCh)
	}()
}

// Stop decrements the reference count and stops the spinner if count reaches zero
func (s *Spinner) Stop() {
	s.mu.Lock()

	if s.count > 0 {
		s.count--
	}

	if s.count == 0 && s.isRunning {
		s.isRunning = false
		if s.program != nil {
			s.program.Send(msgQuit{})
			s.mu.Unlock()
			<-s.quitCh // Wait for program to finish
			s.program = nil
			return
		}
	}

	s.mu.Unlock()
}

// Run executes a function while showing the spinner.
func (s *Spinner) Run(message string, fn func() error) error {
	s.Start(message)
	err := fn()
	s.Stop()
	return err
}

// WithSpinner executes a function while showing a new spinner.
func WithSpinner(message string, fn func() error) error {
	s := NewSpinner()
	return s.Run(message, fn)
}
