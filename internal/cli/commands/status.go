package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"PassKeeper/internal/cli/api"
	fsrepo "PassKeeper/internal/cli/repo/fs"
	"PassKeeper/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server health and current login" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/health"), "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var hr struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &hr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Server:", hr.Status)

	store := fsrepo.AuthFSStore{}
	if email, err := store.LoadEmail(); err == nil {
		fmt.Fprintln(Out, "Logged in as:", email)
	} else {
		fmt.Fprintln(Out, "Not logged in")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
