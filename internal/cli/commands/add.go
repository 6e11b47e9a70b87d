package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"PassKeeper/internal/cli/api"
	"PassKeeper/internal/config"
)

type addRequest struct {
	Title  string `json:"title"`
	Secret string `json:"secret"`
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить запись с секретом" }
func (addCmd) Usage() string       { return "add <title> <secret>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	title, secret := args[0], args[1]

	token, err := loadToken()
	if err != nil {
		return err
	}

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/vault/entries"), addRequest{Title: title, Secret: secret}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", created.ID)
	fmt.Fprintf(Out, "  title: %s\n", title)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
