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

type updateRequest struct {
	Secret string `json:"secret"`
}

type updateCmd struct{}

func (updateCmd) Name() string        { return "update" }
func (updateCmd) Description() string { return "Заменить секрет записи (перешифровка с новым IV)" }
func (updateCmd) Usage() string       { return "update <id> <secret>" }

func (updateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, secret := args[0], args[1]

	token, err := loadToken()
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(http.MethodPut, endpoint(cfg.ServerURL, "/api/vault/entries/"+id), updateRequest{Secret: secret}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Updated")
		return nil
	case http.StatusNotFound:
		return errors.New("entry not found")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(updateCmd{}) }
