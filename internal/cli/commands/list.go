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

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать записи (секреты не расшифровываются)" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token, err := loadToken()
	if err != nil {
		return err
	}

	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/api/vault/entries"), token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var entries []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(Out, "No entries")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(Out, "%s  %s\n", e.ID, e.Title)
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }
