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

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	req := RegisterRequest{Email: email, Password: password}
	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/user/register"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(Out, "Account created. Now run: pkcli login", email, "<password>")
		return nil
	case http.StatusConflict:
		return errors.New("email already in use")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(registerCmd{}) }
