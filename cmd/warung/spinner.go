package main

import (
	"context"
	"fmt"

	"warung/internal/checkout"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// runCheckout drives the payment simulation, showing a spinner while the
// gateway round-trip is in flight when attached to a terminal.
func runCheckout(g *Globals) (checkout.Receipt, error) {
	if !g.Interactive {
		fmt.Fprintln(g.Out, "Processing payment...")
		return g.Checkout.Checkout(context.Background())
	}

	p := tea.NewProgram(newProcessingModel(), tea.WithOutput(g.Out))
	go func() {
		receipt, err := g.Checkout.Checkout(context.Background())
		p.Send(checkoutDoneMsg{receipt: receipt, err: err})
	}()

	m, err := p.Run()
	if err != nil {
		return checkout.Receipt{}, err
	}
	done := m.(processingModel)
	return done.receipt, done.err
}

type checkoutDoneMsg struct {
	receipt checkout.Receipt
	err     error
}

type processingModel struct {
	spinner spinner.Model
	done    bool
	receipt checkout.Receipt
	err     error
}

func newProcessingModel() processingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return processingModel{spinner: s}
}

func (m processingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m processingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkoutDoneMsg:
		m.done = true
		m.receipt = msg.receipt
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m processingModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " Processing payment...\n"
}
