package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-delivery-board/internal/adapter"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
)

var _ Client = (*App)(nil)

// App runs one command of the delivery board CLI against the server.
type App struct {
	adapter adapter.ServerAdapter
	tokens  *TokenStore
	args    []string

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens *TokenStore, args []string, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || tokens == nil {
		return nil, fmt.Errorf("client app needs a server adapter and a token store")
	}

	return &App{
		adapter: serverAdapter,
		tokens:  tokens,
		args:    args,
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  logger,
	}, nil
}

func (a *App) Run() error {
	return a.RunContext(context.Background())
}

// RunContext restores the stored session token, executes the command named
// by the app's arguments, and persists the token again if the server rotated
// it.
func (a *App) RunContext(ctx context.Context) error {
	stored, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.adapter.SetToken(stored)

	cmd := a.rootCommand()
	cmd.SetArgs(a.args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	runErr := cmd.ExecuteContext(ctx)

	if current := a.adapter.Token(); current != stored {
		if err = a.tokens.Save(current); err != nil {
			a.logger.Err(err).Msg("error saving session token")
			if runErr == nil {
				return err
			}
		}
	}

	return runErr
}
