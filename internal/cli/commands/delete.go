package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PassKeeper/internal/cli/api"
	"PassKeeper/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить запись" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]

	token, err := loadToken()
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(http.MethodDelete, endpoint(cfg.ServerURL, "/api/vault/entries/"+id), nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Deleted")
		return nil
	case http.StatusNotFound:
		return errors.New("entry not found")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(deleteCmd{}) }
