package main

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
)

type jobMsg interface {
	isJob()
}

type jobStartedMsg struct {
	ID    int
	Title string
}

type jobLogMsg struct {
	ID    int
	Title string
	Line  string
}

type jobFinishedMsg struct {
	ID    int
	Title string
	Err   error
}

type jobChannelClosedMsg struct {
	ID int
}

func (jobStartedMsg) isJob()       {}
func (jobLogMsg) isJob()           {}
func (jobFinishedMsg) isJob()      {}
func (jobChannelClosedMsg) isJob() {}

type jobRequest struct {
	id      int
	title   string
	dir     string
	command string
	args    []string
}

// jobManager runs external commands one after another inside a pty and
// turns their output into tea messages.
type jobManager struct {
	queue   []jobRequest
	current *jobRequest
	ch      <-chan jobMsg
	nextID  int
}

func newJobManager() *jobManager {
	return &jobManager{}
}

// openerJob runs the configured opener on path from the directory holding it.
func openerJob(opener, path string) jobRequest {
	return jobRequest{
		title:   filepath.Base(opener) + " " + filepath.Base(path),
		dir:     filepath.Dir(path),
		command: opener,
		args:    []string{path},
	}
}

func (jm *jobManager) Enqueue(req jobRequest) tea.Cmd {
	jm.nextID++
	req.id = jm.nextID
	jm.queue = append(jm.queue, req)
	return jm.nextCmd()
}

func (jm *jobManager) Running() bool {
	return jm.current != nil
}

func (jm *jobManager) Pending() int {
	return len(jm.queue)
}

// Handle advances the manager after one job message and returns the command
// that waits for the next one.
func (jm *jobManager) Handle(msg jobMsg) tea.Cmd {
	switch msg.(type) {
	case jobStartedMsg, jobLogMsg, jobFinishedMsg:
		if jm.ch != nil {
			return waitForJobMsg(jm.ch)
		}
	case jobChannelClosedMsg:
		jm.current = nil
		jm.ch = nil
		return jm.nextCmd()
	}
	return nil
}

func (jm *jobManager) nextCmd() tea.Cmd {
	if jm.current != nil || len(jm.queue) == 0 {
		return nil
	}
	req := jm.queue[0]
	jm.queue = jm.queue[1:]
	jm.current = &req

	ch := make(chan jobMsg)
	jm.ch = ch
	go runJob(req, ch)
	return waitForJobMsg(ch)
}

func runJob(req jobRequest, ch chan<- jobMsg) {
	defer close(ch)

	ch <- jobStartedMsg{ID: req.id, Title: req.title}

	cmd := exec.Command(req.command, req.args...)
	if req.dir != "" {
		cmd.Dir = req.dir
	}
	cmd.Env = os.Environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		ch <- jobFinishedMsg{ID: req.id, Title: req.title, Err: err}
		return
	}
	defer ptmx.Close()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(ptmx)
		for scanner.Scan() {
			ch <- jobLogMsg{ID: req.id, Title: req.title, Line: scanner.Text()}
		}
	}()

	wg.Wait()
	err = cmd.Wait()
	ch <- jobFinishedMsg{ID: req.id, Title: req.title, Err: err}
}

func waitForJobMsg(ch <-chan jobMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return jobChannelClosedMsg{}
		}
		return msg
	}
}
