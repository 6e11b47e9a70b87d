package handlers_test

import (
	"PassKeeper/internal/model"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestVault_RequiresAuth(t *testing.T) {
	router := newTestRouter(t, new(mockUserRepo), new(mockEntryRepo))

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/vault/entries", `{"title":"t","secret":"s"}`},
		{http.MethodGet, "/api/vault/entries", ""},
		{http.MethodPut, "/api/vault/entries/e1", `{"secret":"s"}`},
		{http.MethodDelete, "/api/vault/entries/e1", ""},
		{http.MethodPost, "/api/vault/entries/e1/reveal", ""},
	}
	for _, tc := range cases {
		var body *strings.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		} else {
			body = strings.NewReader("")
		}
		req := httptest.NewRequest(tc.method, tc.path, body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)

		// мусорный токен — тоже 401
		req2 := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req2.Header.Set("Authorization", "Bearer garbage")
		rr2 := httptest.NewRecorder()
		router.ServeHTTP(rr2, req2)
		assert.Equal(t, http.StatusUnauthorized, rr2.Code, "%s %s (bad token)", tc.method, tc.path)
	}
}

func TestVault_Create(t *testing.T) {
	er := new(mockEntryRepo)
	router := newTestRouter(t, new(mockUserRepo), er)

	t.Run("ok", func(t *testing.T) {
		er.ExpectedCalls = nil
		er.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Entry) bool {
			// владелец берётся из токена, секрет зашифрован
			return e.UserID == 7 && e.Title == "Gmail" &&
				string(e.Cipher) != "secret1" && len(e.IV) > 0
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/vault/entries", strings.NewReader(`{"title":"Gmail","secret":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			ID string `json:"id"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotEmpty(t, body.ID)
		er.AssertExpectations(t)
	})

	t.Run("empty fields", func(t *testing.T) {
		er.ExpectedCalls = nil

		req := httptest.NewRequest(http.MethodPost, "/api/vault/entries", strings.NewReader(`{"title":"","secret":"s"}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		er.AssertNotCalled(t, "Create")
	})
}

func TestVault_List(t *testing.T) {
	er := new(mockEntryRepo)
	router := newTestRouter(t, new(mockUserRepo), er)

	er.On("ListByUser", mock.Anything, int64(7)).Return([]model.Entry{
		{ID: "e1", UserID: 7, Title: "Gmail", Cipher: []byte{1, 2}, IV: []byte{3, 4}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/vault/entries", nil)
	addAuthHeader(t, req, 7)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Ciphertext []byte `json:"ciphertext"`
		IV         []byte `json:"iv"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "e1", body[0].ID)
	assert.Equal(t, []byte{1, 2}, body[0].Ciphertext)
	assert.Equal(t, []byte{3, 4}, body[0].IV)
	er.AssertExpectations(t)
}

func TestVault_Update(t *testing.T) {
	er := new(mockEntryRepo)
	router := newTestRouter(t, new(mockUserRepo), er)

	t.Run("ok", func(t *testing.T) {
		er.ExpectedCalls = nil
		er.On("UpdateSecret", mock.Anything, int64(7), "e1", mock.Anything, mock.Anything).Return(int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/vault/entries/e1", strings.NewReader(`{"secret":"new"}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		er.AssertExpectations(t)
	})

	t.Run("not found or not owned", func(t *testing.T) {
		er.ExpectedCalls = nil
		er.On("UpdateSecret", mock.Anything, int64(7), "alien", mock.Anything, mock.Anything).Return(int64(0), nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/vault/entries/alien", strings.NewReader(`{"secret":"new"}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		er.AssertExpectations(t)
	})
}

func TestVault_Delete(t *testing.T) {
	er := new(mockEntryRepo)
	router := newTestRouter(t, new(mockUserRepo), er)

	er.On("Delete", mock.Anything, int64(7), "e1").Return(int64(1), nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/vault/entries/e1", nil)
	addAuthHeader(t, req, 7)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	er.On("Delete", mock.Anything, int64(7), "missing").Return(int64(0), nil).Once()

	req2 := httptest.NewRequest(http.MethodDelete, "/api/vault/entries/missing", nil)
	addAuthHeader(t, req2, 7)
	rr2 := httptest.NewRecorder()
	router.ServeHTTP(rr2, req2)
	assert.Equal(t, http.StatusNotFound, rr2.Code)

	er.AssertExpectations(t)
}

func TestVault_Reveal(t *testing.T) {
	er := new(mockEntryRepo)
	router := newTestRouter(t, new(mockUserRepo), er)

	t.Run("ok", func(t *testing.T) {
		cipherText, iv, err := testCipher(t).Encrypt([]byte("secret1"))
		assert.NoError(t, err)

		er.ExpectedCalls = nil
		er.On("GetByID", mock.Anything, int64(7), "e1").
			Return(&model.Entry{ID: "e1", UserID: 7, Cipher: cipherText, IV: iv}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/vault/entries/e1/reveal", nil)
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Plaintext string `json:"plaintext"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "secret1", body.Plaintext)
		er.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		er.ExpectedCalls = nil
		er.On("GetByID", mock.Anything, int64(7), "missing").Return((*model.Entry)(nil), gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/vault/entries/missing/reveal", nil)
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		er.AssertExpectations(t)
	})

	t.Run("tampered record", func(t *testing.T) {
		er.ExpectedCalls = nil
		er.On("GetByID", mock.Anything, int64(7), "e1").
			Return(&model.Entry{ID: "e1", UserID: 7, Cipher: []byte{1, 2, 3}, IV: []byte{4, 5, 6}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/vault/entries/e1/reveal", nil)
		addAuthHeader(t, req, 7)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		er.AssertExpectations(t)
	})
}
