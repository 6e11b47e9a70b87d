package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"PassKeeper/internal/cli/api"
	fsrepo "PassKeeper/internal/cli/repo/fs"
	"PassKeeper/internal/config"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the bearer token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	req := LoginRequest{Email: email, Password: password}
	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/user/login"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if lr.Token == "" {
		return errors.New("no token in response")
	}

	store := fsrepo.AuthFSStore{}
	if err := store.Save(lr.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	_ = store.SaveEmail(email)

	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
