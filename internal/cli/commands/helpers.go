package commands

import (
	"errors"
	"strings"

	fsrepo "PassKeeper/internal/cli/repo/fs"
)

// endpoint строит полный URL эндпоинта сервера.
func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// loadToken читает сохранённый токен; без него защищённые команды не работают.
func loadToken() (string, error) {
	store := fsrepo.AuthFSStore{}
	tok, err := store.Load()
	if err != nil {
		return "", errors.New("not logged in (run: pkcli login <email> <password>)")
	}
	return tok, nil
}
