package commands

import (
	"context"
	"io"
	"os"

	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/config"
	"github.com/combahton/cbcli/internal/presenter"
)

// Context holds shared dependencies injected into commands
type Context struct {
	Ctx        context.Context
	Store      *config.Store
	Client     api.Caller
	Presenter  *presenter.Presenter
	Out        io.Writer
	JsonOutput bool
	// Keyring makes login keep the API key in the OS keychain
	Keyring bool
}

// Background returns the context used for API calls.
func (c *Context) Background() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}

// Writer is where command output goes.
func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}

	return c.Out
}

// Printer returns the presenter, creating one on the command writer if needed.
func (c *Context) Printer() *presenter.Presenter {
	if c.Presenter == nil {
		c.Presenter = presenter.New(c.Writer())
	}

	return c.Presenter
}
