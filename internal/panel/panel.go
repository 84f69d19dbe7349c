package panel

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"gooey/internal/params"
)

// Panel runs the control panel program on its own goroutine and delivers
// edits on Changes.
type Panel struct {
	prog    *tea.Program
	changes chan params.Change
	done    chan struct{}
	once    sync.Once
}

func New(p params.Parameters, opts ...tea.ProgramOption) *Panel {
	pn := &Panel{
		changes: make(chan params.Change, 64),
		done:    make(chan struct{}),
	}
	pn.prog = tea.NewProgram(NewModel(p, pn.send), opts...)
	return pn
}

// send blocks until the render loop takes the change or the panel closes.
func (p *Panel) send(c params.Change) {
	select {
	case p.changes <- c:
	case <-p.done:
	}
}

// Changes yields one value per control edit.
func (p *Panel) Changes() <-chan params.Change { return p.changes }

// Run blocks until the panel is closed by the user or by Quit.
func (p *Panel) Run() error {
	defer p.once.Do(func() { close(p.done) })
	_, err := p.prog.Run()
	return err
}

// Done is closed once the panel has stopped.
func (p *Panel) Done() <-chan struct{} { return p.done }

// Report forwards render loop status to the panel. Safe from any goroutine.
func (p *Panel) Report(s Status) {
	select {
	case <-p.done:
	default:
		p.prog.Send(s)
	}
}

func (p *Panel) Quit() {
	p.prog.Quit()
}

// Drain applies every pending change without blocking and returns how many
// were applied.
func Drain(changes <-chan params.Change, apply func(params.Change)) int {
	n := 0
	for {
		select {
		case c := <-changes:
			apply(c)
			n++
		default:
			return n
		}
	}
}
