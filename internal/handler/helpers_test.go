package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compracerta/internal/dto"
	"compracerta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidate(t *testing.T) {
	// JSON malformado → 400
	c, w := testCtx(`{`)
	var req dto.LoginRequest
	assert.False(t, bindAndValidate(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Campo obrigatório ausente → 422 com o mapa de campos
	c, w = testCtx(`{"email":"nao-e-email","password":""}`)
	req = dto.LoginRequest{}
	assert.False(t, bindAndValidate(c, &req))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var payload struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Contains(t, payload.Fields, "Email")
	assert.Contains(t, payload.Fields, "Password")

	// Payload válido
	c, _ = testCtx(`{"email":"maria@acme.com","password":"1234"}`)
	req = dto.LoginRequest{}
	assert.True(t, bindAndValidate(c, &req))
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&service.ValidacaoError{Fields: map[string]string{"status": "x"}}, http.StatusUnprocessableEntity},
		{service.ErrNaoEncontrada, http.StatusNotFound},
		{service.ErrAcessoNegado, http.StatusForbidden},
		{errors.New("qualquer outra coisa"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		c, w := testCtx(`{}`)
		respondServiceError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, "erro %v", tc.err)
	}
}
