package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PassKeeper/internal/cli/api"
	"PassKeeper/internal/config"
)

type revealCmd struct{}

func (revealCmd) Name() string        { return "reveal" }
func (revealCmd) Description() string { return "Расшифровать и показать секрет записи" }
func (revealCmd) Usage() string       { return "reveal <id>" }

func (revealCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]

	token, err := loadToken()
	if err != nil {
		return err
	}

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/vault/entries/"+id+"/reveal"), nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return errors.New("entry not found")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var revealed struct {
		Plaintext string `json:"plaintext"`
	}
	if err := json.Unmarshal(body, &revealed); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, revealed.Plaintext)
	return nil
}

func init() { RegisterCmd(revealCmd{}) }
